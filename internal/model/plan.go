// internal/model/plan.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// 療育タイプ (固定の閉集合)
const (
	TherapySpeech    = "speech"
	TherapyBehavior  = "behavior"
	TherapyEmotional = "emotional"
	TherapyMotor     = "motor"
)

// DefaultTherapyType は不明・未設定の場合のフォールバック
const DefaultTherapyType = TherapyBehavior

// ValidTherapyType は閉集合に含まれるタイプかどうかを返します
func ValidTherapyType(t string) bool {
	switch t {
	case TherapySpeech, TherapyBehavior, TherapyEmotional, TherapyMotor:
		return true
	}
	return false
}

// WeeklyGoal は週間目標の正規形 (タグ付きオブジェクト) です。
// 旧スキーマでは目標がただの文字列だったため、Category は nil になり得ます。
type WeeklyGoal struct {
	Goal     string  `json:"goal"`
	Category *string `json:"category"`
}

// WeeklyGoals は週間目標の列です。
// UnmarshalJSON が旧形式 (文字列配列) と現行形式 (オブジェクト配列) の両方を受け付け、
// 常に正規形へ変換します。正規化はこの境界で一度だけ行い、内部のコードは
// 旧形式の存在を意識しません。正規化済みの入力はそのまま通るため冪等です。
type WeeklyGoals []WeeklyGoal

func (g *WeeklyGoals) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	goals := make([]WeeklyGoal, 0, len(raw))
	for _, item := range raw {
		// まず旧形式 (文字列) を試す
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			goals = append(goals, WeeklyGoal{Goal: s, Category: nil})
			continue
		}
		// 現行形式 (オブジェクト)
		var obj WeeklyGoal
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		goals = append(goals, obj)
	}

	*g = goals
	return nil
}

// DailyTask は1日分の課題です。
// DemoVideoSuggestion は生成パイプラインの付加情報、DemoVideoURL は後から人間が
// アップロードした動画で、両者は独立しておりどちらも任意です。
type DailyTask struct {
	TaskID              string `json:"task_id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	WhyItMatters        string `json:"why_it_matters"`
	WeeklyGoalIndex     int    `json:"weekly_goal_index"` // 同一プラン内の WeeklyGoals への0始まり参照
	DemoVideoURL        string `json:"demo_video_url,omitempty"`
	DemoVideoSuggestion string `json:"demo_video_suggestion,omitempty"`
	Editable            bool   `json:"editable"`
}

// TreatmentPlan は生成パイプラインの成果物です。作成後は新しいプランの追加のみで、
// 既存プランの書き換えは行いません (最新 CreatedAt のプランが「現在のプラン」)。
type TreatmentPlan struct {
	PlanID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"plan_id"`
	ChildID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"child_id"`
	TherapistID uuid.UUID   `gorm:"type:uuid;not null;index" json:"therapist_id"`
	Transcript  string      `gorm:"type:text;not null" json:"transcript"`
	Summary     string      `gorm:"type:text;not null" json:"summary"`
	TherapyType string      `gorm:"type:varchar(20);not null" json:"therapy_type"`
	WeeklyGoals WeeklyGoals `gorm:"serializer:json" json:"weekly_goals"`
	DailyTasks  []DailyTask `gorm:"serializer:json" json:"daily_tasks"`
	AudioURL    string      `json:"audio_url,omitempty"`
	DocumentURL string      `json:"document_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}

// LatestPlan は「現在のプラン」の唯一の判定ルールです (CreatedAt 最大のもの)。
// 各所で sort して先頭を取る実装が分散しないよう、必ずこの関数を使います。
func LatestPlan(plans []*TreatmentPlan) *TreatmentPlan {
	var latest *TreatmentPlan
	for _, p := range plans {
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest
}

// SessionSummary は要約能力 (外部LLM) が返すJSONの正規化済みの形です。
// WeeklyGoals は境界で正規化済み、WeeklyGoalIndex は検証・クランプ済みです。
type SessionSummary struct {
	Summary     string      `json:"summary"`
	TherapyType string      `json:"therapy_type"`
	WeeklyGoals WeeklyGoals `json:"weekly_goals"`
	DailyTasks  []DailyTask `json:"daily_tasks"`
}

// PlanResponse はプラン取得・生成APIのレスポンスです。
// Warnings には「保存はされたが欠けがある」旨 (書類アップロード失敗など) を入れます。
type PlanResponse struct {
	Plan     *TreatmentPlan `json:"plan"`
	Warnings []string       `json:"warnings,omitempty"`
}

// AttachDemoVideoRequest は課題への動画添付APIのリクエストボディ
type AttachDemoVideoRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}
