// internal/model/analytics.go
package model

import "time"

// WeeklySummary は直近の7日間ウィンドウ1つ分の集計です (永続化しない導出データ)。
type WeeklySummary struct {
	WeekStart      time.Time `json:"week_start"`
	WeekEnd        time.Time `json:"week_end"`
	TasksCompleted int       `json:"tasks_completed"`
	TotalTasks     int       `json:"total_tasks"`
	CompletionRate int       `json:"completion_rate"` // 0-100 (%)
	EngagementRate int       `json:"engagement_rate"` // 0-100 (%)
}

// ProgressReport は全体統計と直近4週間のトレンドをまとめたレスポンスです。
type ProgressReport struct {
	TotalSessions  int              `json:"total_sessions"`
	CompletedCount int              `json:"completed_count"`
	CompletionRate int              `json:"completion_rate"` // 0-100 (%)
	FeedbackCounts map[string]int   `json:"feedback_counts"`
	MoodCounts     map[string]int   `json:"mood_counts"`
	WeeklyTrend    []WeeklySummary  `json:"weekly_trend"` // 古い週から順に4件
	// 実データが無くサンプル系列で補完した場合 true
	Synthetic bool `json:"synthetic"`
}

// SkillProgress はスキル名ごとの推移 (パーセンテージ観測値の列) です。
// フィードバックにはスキル単位の採点が無いため、これは平滑化された推定であり
// 実測値ではありません。レスポンスでも estimate であることを明示します。
type SkillProgress struct {
	TherapyType string           `json:"therapy_type"`
	Estimate    bool             `json:"estimate"` // 常に true
	Skills      []SkillCurve     `json:"skills"`
}

// SkillCurve は1スキル分の観測列です。
type SkillCurve struct {
	Name   string `json:"name"`
	Points []int  `json:"points"` // 各値は [0,100]
}
