// internal/capability/transcriber.go
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

// Transcriber は音声→テキストの外部能力です。
// 実装の内部挙動はここでは規定せず、入出力契約のみを定義します。
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

const transcribeRequestTimeout = 120 * time.Second

// httpTranscriber は設定されたエンドポイントに音声バイト列をPOSTする実装です
type httpTranscriber struct {
	cfg    config.CapabilityEndpoint
	client *http.Client
}

func NewHTTPTranscriber(cfg config.CapabilityEndpoint) Transcriber {
	return &httpTranscriber{
		cfg:    cfg,
		client: &http.Client{Timeout: transcribeRequestTimeout},
	}
}

// transcribeResponse は文字起こしエンドポイントのレスポンスボディ
type transcribeResponse struct {
	Text string `json:"text"`
}

func (t *httpTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	logger := middleware.GetLogger(ctx)

	if len(audio) == 0 {
		return "", model.NewAppError("TRANSCRIPTION_FAILED", "音声データが空です。", "audio", model.ErrUpstream)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.URL, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to create transcribe request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)
	if t.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		logger.Error("Transcription request failed", "error", err)
		return "", model.NewAppError("TRANSCRIPTION_FAILED", "文字起こしサービスに接続できませんでした。", "", model.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Transcription returned non-OK status", "status", resp.StatusCode)
		return "", model.NewAppError("TRANSCRIPTION_FAILED", "文字起こしサービスがエラーを返しました。", "", model.ErrUpstream)
	}

	var body transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error("Failed to decode transcription response", "error", err)
		return "", model.NewAppError("TRANSCRIPTION_FAILED", "文字起こし結果を解釈できませんでした。", "", model.ErrUpstream)
	}
	if body.Text == "" {
		return "", model.NewAppError("TRANSCRIPTION_FAILED", "文字起こし結果が空でした。", "", model.ErrUpstream)
	}

	return body.Text, nil
}
