// internal/capability/suggester.go
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

// Suggester は日課に対する短いお手本動画の提案を返す外部能力です。
// 提案の失敗は課題単位で許容されるため、呼び出し側はエラーを警告として扱います。
type Suggester interface {
	SuggestDemoVideo(ctx context.Context, taskDescription, locale string) (string, error)
}

const suggestRequestTimeout = 30 * time.Second

type httpSuggester struct {
	cfg    config.CapabilityEndpoint
	client *http.Client
}

func NewHTTPSuggester(cfg config.CapabilityEndpoint) Suggester {
	return &httpSuggester{
		cfg:    cfg,
		client: &http.Client{Timeout: suggestRequestTimeout},
	}
}

type suggestRequest struct {
	TaskDescription string `json:"task_description"`
	Locale          string `json:"locale"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

func (s *httpSuggester) SuggestDemoVideo(ctx context.Context, taskDescription, locale string) (string, error) {
	logger := middleware.GetLogger(ctx)

	reqBody, err := json.Marshal(suggestRequest{
		TaskDescription: taskDescription,
		Locale:          locale,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal suggest request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create suggest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("Demo video suggestion request failed", "error", err)
		return "", model.NewAppError("SUGGESTION_FAILED", "動画提案サービスに接続できませんでした。", "", model.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Demo video suggestion returned non-OK status", "status", resp.StatusCode)
		return "", model.NewAppError("SUGGESTION_FAILED", "動画提案サービスがエラーを返しました。", "", model.ErrUpstream)
	}

	var body suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Warn("Failed to decode suggestion response", "error", err)
		return "", model.NewAppError("SUGGESTION_FAILED", "動画提案の結果を解釈できませんでした。", "", model.ErrUpstream)
	}

	return body.Suggestion, nil
}
