// internal/model/feedback.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// フィードバックのカテゴリ (固定の閉集合)
const (
	FeedbackEasy          = "easy"
	FeedbackStruggled     = "struggled"
	FeedbackNeedsPractice = "needs_practice"
)

// 子どもの気分
const (
	MoodHappy      = "happy"
	MoodNeutral    = "neutral"
	MoodFrustrated = "frustrated"
)

// SessionFeedback は保護者が記録する1回分の実施フィードバックです。
// 一度記録したら不変で、分析レイヤは読み取りのみ行います。
type SessionFeedback struct {
	FeedbackID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"feedback_id"`
	ChildID         uuid.UUID `gorm:"type:uuid;not null;index" json:"child_id"`
	TaskDescription string    `gorm:"type:text;not null" json:"task_description"`
	Feedback        string    `gorm:"type:varchar(20);not null" json:"feedback"`
	ChildMood       *string   `gorm:"type:varchar(20)" json:"child_mood,omitempty"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	Completed       bool      `gorm:"not null" json:"completed"`
	CompletedAt     time.Time `gorm:"not null;index" json:"completed_at"`
	CreatedAt       time.Time `json:"created_at"`
}

func (SessionFeedback) TableName() string {
	return "session_feedbacks"
}

// CreateFeedbackRequest はフィードバック記録APIのリクエストボディ (DTO)
type CreateFeedbackRequest struct {
	TaskDescription string  `json:"task_description" validate:"required,min=1"`
	Feedback        string  `json:"feedback" validate:"required,oneof=easy struggled needs_practice"`
	ChildMood       *string `json:"child_mood,omitempty" validate:"omitempty,oneof=happy neutral frustrated"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Completed       bool    `json:"completed"`
	// 省略時はサーバ側で現在時刻を設定
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
