// internal/model/plan_test.go
package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WeeklyGoals_UnmarshalJSON(t *testing.T) {
	category := "communication"

	tests := []struct {
		name    string
		input   string
		want    WeeklyGoals
		wantErr bool
	}{
		{
			name:  "旧形式: 文字列配列はタグ付きオブジェクトに正規化される",
			input: `["毎日5分間の発話練習", "指差しで要求を伝える"]`,
			want: WeeklyGoals{
				{Goal: "毎日5分間の発話練習", Category: nil},
				{Goal: "指差しで要求を伝える", Category: nil},
			},
		},
		{
			name:  "現行形式: オブジェクト配列はそのまま通る",
			input: `[{"goal":"毎日5分間の発話練習","category":"communication"}]`,
			want: WeeklyGoals{
				{Goal: "毎日5分間の発話練習", Category: &category},
			},
		},
		{
			name:  "混在: 文字列とオブジェクトが混ざっていても両方受け付ける",
			input: `["旧形式の目標", {"goal":"新形式の目標","category":"communication"}]`,
			want: WeeklyGoals{
				{Goal: "旧形式の目標", Category: nil},
				{Goal: "新形式の目標", Category: &category},
			},
		},
		{
			name:  "category無しのオブジェクトはCategoryがnil",
			input: `[{"goal":"目標のみ"}]`,
			want: WeeklyGoals{
				{Goal: "目標のみ", Category: nil},
			},
		},
		{
			name:  "空配列",
			input: `[]`,
			want:  WeeklyGoals{},
		},
		{
			name:    "配列以外はエラー",
			input:   `{"goal":"not an array"}`,
			wantErr: true,
		},
		{
			name:    "数値要素はエラー",
			input:   `[123]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got WeeklyGoals
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 正規形を一度JSONにしてデコードし直しても形が変わらないこと (冪等性)
func Test_WeeklyGoals_Normalization_Idempotent(t *testing.T) {
	category := "motor"
	original := WeeklyGoals{
		{Goal: "ボタンはめの練習", Category: &category},
		{Goal: "旧形式由来の目標", Category: nil},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded WeeklyGoals
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func Test_LatestPlan(t *testing.T) {
	now := time.Now()
	oldest := &TreatmentPlan{PlanID: uuid.New(), CreatedAt: now.AddDate(0, 0, -14)}
	middle := &TreatmentPlan{PlanID: uuid.New(), CreatedAt: now.AddDate(0, 0, -7)}
	newest := &TreatmentPlan{PlanID: uuid.New(), CreatedAt: now}

	tests := []struct {
		name  string
		plans []*TreatmentPlan
		want  *TreatmentPlan
	}{
		{
			name:  "複数プランからCreatedAt最大のものを返す",
			plans: []*TreatmentPlan{middle, newest, oldest},
			want:  newest,
		},
		{
			name:  "1件ならそれを返す",
			plans: []*TreatmentPlan{oldest},
			want:  oldest,
		},
		{
			name:  "空ならnil",
			plans: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatestPlan(tt.plans)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ValidTherapyType(t *testing.T) {
	assert.True(t, ValidTherapyType(TherapySpeech))
	assert.True(t, ValidTherapyType(TherapyBehavior))
	assert.True(t, ValidTherapyType(TherapyEmotional))
	assert.True(t, ValidTherapyType(TherapyMotor))
	assert.False(t, ValidTherapyType(""))
	assert.False(t, ValidTherapyType("occupational"))
}
