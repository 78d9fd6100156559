// internal/capability/chat.go
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

// ChatAssistant は保護者向けチャットの外部能力です。
// パイプラインのコア外ですが、他の能力と同じ境界パターンで扱います。
type ChatAssistant interface {
	Chat(ctx context.Context, messages []model.ChatMessage, userContext, locale string) (string, error)
}

const chatRequestTimeout = 60 * time.Second

type httpChatAssistant struct {
	cfg    config.CapabilityEndpoint
	client *http.Client
}

func NewHTTPChatAssistant(cfg config.CapabilityEndpoint) ChatAssistant {
	return &httpChatAssistant{
		cfg:    cfg,
		client: &http.Client{Timeout: chatRequestTimeout},
	}
}

type chatAPIRequest struct {
	Messages    []model.ChatMessage `json:"messages"`
	UserContext string              `json:"user_context,omitempty"`
	Locale      string              `json:"locale"`
	Model       string              `json:"model,omitempty"`
}

type chatAPIResponse struct {
	Reply string `json:"reply"`
}

func (c *httpChatAssistant) Chat(ctx context.Context, messages []model.ChatMessage, userContext, locale string) (string, error) {
	logger := middleware.GetLogger(ctx)

	reqBody, err := json.Marshal(chatAPIRequest{
		Messages:    messages,
		UserContext: userContext,
		Locale:      locale,
		Model:       c.cfg.Model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Chat request failed", "error", err)
		return "", model.NewAppError("CHAT_FAILED", "チャットサービスに接続できませんでした。", "", model.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Chat returned non-OK status", "status", resp.StatusCode)
		return "", model.NewAppError("CHAT_FAILED", "チャットサービスがエラーを返しました。", "", model.ErrUpstream)
	}

	var body chatAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Error("Failed to decode chat response", "error", err)
		return "", model.NewAppError("CHAT_FAILED", "チャットの応答を解釈できませんでした。", "", model.ErrUpstream)
	}

	return body.Reply, nil
}
