// internal/capability/summarizer.go
package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
)

// Summarizer はセッションの書き起こしから構造化された要約 (週間目標・日課) を
// 生成する外部能力です。返却JSONの検証と正規形への変換はこちら側の責務です。
type Summarizer interface {
	Summarize(ctx context.Context, transcript, locale string) (*model.SessionSummary, error)
}

const summarizeRequestTimeout = 120 * time.Second

type httpSummarizer struct {
	cfg    config.CapabilityEndpoint
	client *http.Client
}

func NewHTTPSummarizer(cfg config.CapabilityEndpoint) Summarizer {
	return &httpSummarizer{
		cfg:    cfg,
		client: &http.Client{Timeout: summarizeRequestTimeout},
	}
}

type summarizeRequest struct {
	Transcript string `json:"transcript"`
	Locale     string `json:"locale"`
	Model      string `json:"model,omitempty"`
}

// summarizePayload は外部要約能力が返す生のJSONです。
// WeeklyGoals は model.WeeklyGoals のデコードを通ることで、旧形式 (文字列配列) も
// この境界で正規形 (タグ付きオブジェクト) に変換されます。
type summarizePayload struct {
	Summary     string            `json:"summary"`
	TherapyType string            `json:"therapyType"`
	WeeklyGoals model.WeeklyGoals `json:"weeklyGoals"`
	DailyTasks  []struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		WhyItMatters    string `json:"whyItMatters"`
		WeeklyGoalIndex int    `json:"weeklyGoalIndex"`
	} `json:"dailyTasks"`
}

func (s *httpSummarizer) Summarize(ctx context.Context, transcript, locale string) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx)

	reqBody, err := json.Marshal(summarizeRequest{
		Transcript: transcript,
		Locale:     locale,
		Model:      s.cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summarize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create summarize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("Summarization request failed", "error", err)
		return nil, model.NewAppError("SUMMARIZATION_FAILED", "要約サービスに接続できませんでした。", "", model.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Summarization returned non-OK status", "status", resp.StatusCode)
		return nil, model.NewAppError("SUMMARIZATION_FAILED", "要約サービスがエラーを返しました。", "", model.ErrUpstream)
	}

	var payload summarizePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Error("Summarization payload is not valid JSON", "error", err)
		return nil, model.NewAppError("UPSTREAM_FORMAT_ERROR", "要約結果を解釈できませんでした。", "", model.ErrUpstreamFormat)
	}

	return validateSummaryPayload(ctx, &payload)
}

// validateSummaryPayload は外部要約JSONを検証し、正規形の SessionSummary に変換します。
//   - summary / dailyTasks の欠落は ErrUpstreamFormat (リトライせず呼び出し元に返す)
//   - 未知の therapyType は behavior にフォールバック
//   - 範囲外の weeklyGoalIndex は末尾の目標にクランプし、警告ログのみ残す
//     (不完全なプランでも人間のレビューを通るため、失敗より優先する)
func validateSummaryPayload(ctx context.Context, payload *summarizePayload) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx)

	if payload.Summary == "" {
		return nil, model.NewAppError("UPSTREAM_FORMAT_ERROR", "要約結果に summary が含まれていません。", "summary", model.ErrUpstreamFormat)
	}
	if len(payload.DailyTasks) == 0 {
		return nil, model.NewAppError("UPSTREAM_FORMAT_ERROR", "要約結果に dailyTasks が含まれていません。", "dailyTasks", model.ErrUpstreamFormat)
	}

	therapyType := payload.TherapyType
	if !model.ValidTherapyType(therapyType) {
		if therapyType != "" {
			logger.Warn("Unknown therapy type from summarizer, falling back to default",
				"therapy_type", therapyType)
		}
		therapyType = model.DefaultTherapyType
	}

	tasks := make([]model.DailyTask, 0, len(payload.DailyTasks))
	for i, raw := range payload.DailyTasks {
		idx := raw.WeeklyGoalIndex
		if idx < 0 || idx >= len(payload.WeeklyGoals) {
			// データ品質の問題として記録するだけで、失敗にはしない
			clamped := 0
			if len(payload.WeeklyGoals) > 0 {
				clamped = len(payload.WeeklyGoals) - 1
			}
			logger.Warn("weeklyGoalIndex out of range, clamping",
				"task_index", i,
				"weekly_goal_index", idx,
				"goal_count", len(payload.WeeklyGoals),
				"clamped_to", clamped,
			)
			idx = clamped
		}
		tasks = append(tasks, model.DailyTask{
			Title:           raw.Title,
			Description:     raw.Description,
			WhyItMatters:    raw.WhyItMatters,
			WeeklyGoalIndex: idx,
		})
	}

	goals := payload.WeeklyGoals
	if goals == nil {
		goals = model.WeeklyGoals{}
	}

	return &model.SessionSummary{
		Summary:     payload.Summary,
		TherapyType: therapyType,
		WeeklyGoals: goals,
		DailyTasks:  tasks,
	}, nil
}

// ParseSummaryJSON は生のJSONバイト列から SessionSummary を組み立てます。
// HTTPアダプタを経由しない入力 (テスト・再処理) 用のエントリポイントです。
func ParseSummaryJSON(ctx context.Context, data []byte) (*model.SessionSummary, error) {
	var payload summarizePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, model.NewAppError("UPSTREAM_FORMAT_ERROR", "要約結果を解釈できませんでした。", "", model.ErrUpstreamFormat)
	}
	return validateSummaryPayload(ctx, &payload)
}
