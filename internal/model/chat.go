// internal/model/chat.go
package model

import "github.com/google/uuid"

// ChatMessage はチャット履歴の1メッセージです
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest はチャットAPIのリクエストボディ (DTO)
type ChatRequest struct {
	ChildID  *uuid.UUID    `json:"child_id,omitempty"`
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Locale   string        `json:"locale,omitempty"`
}

// ChatResponse はチャットAPIのレスポンス
type ChatResponse struct {
	Reply string `json:"reply"`
}
