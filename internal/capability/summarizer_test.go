// internal/capability/summarizer_test.go
package capability

import (
	"context"
	"testing"

	"go_5_care_plan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseSummaryJSON(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, got *model.SessionSummary)
		wantErr error
	}{
		{
			name: "正常系: 完全なペイロード",
			input: `{
				"summary": "発話練習に前向きに取り組めたセッション。",
				"therapyType": "speech",
				"weeklyGoals": [{"goal":"毎日5分間の発話練習","category":"communication"}],
				"dailyTasks": [
					{"title":"音まねゲーム","description":"動物の鳴き声をまねする","whyItMatters":"発話の基礎になる","weeklyGoalIndex":0}
				]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				assert.Equal(t, "発話練習に前向きに取り組めたセッション。", got.Summary)
				assert.Equal(t, model.TherapySpeech, got.TherapyType)
				require.Len(t, got.WeeklyGoals, 1)
				assert.Equal(t, "毎日5分間の発話練習", got.WeeklyGoals[0].Goal)
				require.Len(t, got.DailyTasks, 1)
				assert.Equal(t, 0, got.DailyTasks[0].WeeklyGoalIndex)
			},
		},
		{
			name: "正常系: 旧形式の文字列weeklyGoalsが正規化される",
			input: `{
				"summary": "概要",
				"therapyType": "behavior",
				"weeklyGoals": ["旧形式の目標1", "旧形式の目標2"],
				"dailyTasks": [{"title":"t","description":"d","whyItMatters":"w","weeklyGoalIndex":1}]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				require.Len(t, got.WeeklyGoals, 2)
				assert.Equal(t, "旧形式の目標1", got.WeeklyGoals[0].Goal)
				assert.Nil(t, got.WeeklyGoals[0].Category)
				assert.Equal(t, 1, got.DailyTasks[0].WeeklyGoalIndex)
			},
		},
		{
			name: "未知のtherapyTypeはbehaviorにフォールバック",
			input: `{
				"summary": "概要",
				"therapyType": "hydrotherapy",
				"weeklyGoals": ["目標"],
				"dailyTasks": [{"title":"t","description":"d","whyItMatters":"w","weeklyGoalIndex":0}]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				assert.Equal(t, model.TherapyBehavior, got.TherapyType)
			},
		},
		{
			name: "therapyType未設定もbehaviorにフォールバック",
			input: `{
				"summary": "概要",
				"weeklyGoals": ["目標"],
				"dailyTasks": [{"title":"t","description":"d","whyItMatters":"w","weeklyGoalIndex":0}]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				assert.Equal(t, model.TherapyBehavior, got.TherapyType)
			},
		},
		{
			name: "範囲外のweeklyGoalIndexは末尾にクランプ",
			input: `{
				"summary": "概要",
				"therapyType": "motor",
				"weeklyGoals": ["目標1", "目標2"],
				"dailyTasks": [
					{"title":"t1","description":"d","whyItMatters":"w","weeklyGoalIndex":7},
					{"title":"t2","description":"d","whyItMatters":"w","weeklyGoalIndex":-1}
				]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				require.Len(t, got.DailyTasks, 2)
				assert.Equal(t, 1, got.DailyTasks[0].WeeklyGoalIndex)
				assert.Equal(t, 1, got.DailyTasks[1].WeeklyGoalIndex)
			},
		},
		{
			name: "weeklyGoalsが空でも課題は落とさずインデックスは0",
			input: `{
				"summary": "概要",
				"therapyType": "behavior",
				"weeklyGoals": [],
				"dailyTasks": [{"title":"t","description":"d","whyItMatters":"w","weeklyGoalIndex":3}]
			}`,
			check: func(t *testing.T, got *model.SessionSummary) {
				require.Len(t, got.DailyTasks, 1)
				assert.Equal(t, 0, got.DailyTasks[0].WeeklyGoalIndex)
				assert.NotNil(t, got.WeeklyGoals)
				assert.Empty(t, got.WeeklyGoals)
			},
		},
		{
			name: "summary欠落はフォーマットエラー",
			input: `{
				"therapyType": "speech",
				"weeklyGoals": ["目標"],
				"dailyTasks": [{"title":"t","description":"d","whyItMatters":"w","weeklyGoalIndex":0}]
			}`,
			wantErr: model.ErrUpstreamFormat,
		},
		{
			name: "dailyTasks欠落はフォーマットエラー",
			input: `{
				"summary": "概要",
				"therapyType": "speech",
				"weeklyGoals": ["目標"]
			}`,
			wantErr: model.ErrUpstreamFormat,
		},
		{
			name:    "JSONとして壊れている場合もフォーマットエラー",
			input:   `{"summary": "概要",`,
			wantErr: model.ErrUpstreamFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSummaryJSON(ctx, []byte(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			tt.check(t, got)
		})
	}
}
