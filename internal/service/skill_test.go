// internal/service/skill_test.go
package service

import (
	"testing"

	"go_5_care_plan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildSkillProgress(t *testing.T) {
	tests := []struct {
		name        string
		therapyType string
		wantType    string
		wantSkills  []string
	}{
		{
			name:        "motorは固定の4スキル",
			therapyType: model.TherapyMotor,
			wantType:    model.TherapyMotor,
			wantSkills:  []string{"Fine Motor", "Gross Motor", "Coordination", "Balance"},
		},
		{
			name:        "speechは固定の4スキル",
			therapyType: model.TherapySpeech,
			wantType:    model.TherapySpeech,
			wantSkills:  []string{"Articulation", "Vocabulary", "Sentence Building", "Listening"},
		},
		{
			name:        "emotionalは固定の4スキル",
			therapyType: model.TherapyEmotional,
			wantType:    model.TherapyEmotional,
			wantSkills:  []string{"Emotion Recognition", "Self-Expression", "Coping Skills", "Empathy"},
		},
		{
			name:        "未知のタイプはbehaviorにフォールバック",
			therapyType: "hydrotherapy",
			wantType:    model.TherapyBehavior,
			wantSkills:  []string{"Attention Span", "Following Instructions", "Self-Regulation", "Social Interaction"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := BuildSkillProgress(tt.therapyType, 50)

			assert.Equal(t, tt.wantType, progress.TherapyType)
			assert.True(t, progress.Estimate)
			require.Len(t, progress.Skills, 4)
			for i, skill := range progress.Skills {
				assert.Equal(t, tt.wantSkills[i], skill.Name)
				assert.Len(t, skill.Points, 8)
			}
		})
	}
}

// 曲線の値は常に [0,100] に収まる
func Test_BuildSkillProgress_PointsInRange(t *testing.T) {
	for _, rate := range []int{0, 25, 50, 75, 100} {
		progress := BuildSkillProgress(model.TherapyMotor, rate)
		for _, skill := range progress.Skills {
			for _, p := range skill.Points {
				assert.GreaterOrEqual(t, p, 0)
				assert.LessOrEqual(t, p, 100)
			}
		}
	}
}

// 達成率が高いほど曲線の終点が高くなる (成長バイアス)
func Test_BuildSkillProgress_CompletionRateBiasesGrowth(t *testing.T) {
	low := BuildSkillProgress(model.TherapySpeech, 0)
	high := BuildSkillProgress(model.TherapySpeech, 100)

	lowEnd := low.Skills[0].Points[7]
	highEnd := high.Skills[0].Points[7]
	assert.Greater(t, highEnd, lowEnd)
}

// 同じ入力に対して決定的 (乱数を使わない)
func Test_BuildSkillProgress_Deterministic(t *testing.T) {
	a := BuildSkillProgress(model.TherapyBehavior, 60)
	b := BuildSkillProgress(model.TherapyBehavior, 60)
	assert.Equal(t, a, b)
}

// 4点目に一度だけ落ち込みがある (単調増加ではない)
func Test_BuildSkillProgress_HasMidCurveDip(t *testing.T) {
	progress := BuildSkillProgress(model.TherapyBehavior, 0)
	points := progress.Skills[0].Points
	assert.Less(t, points[4], points[3]+5)
}
