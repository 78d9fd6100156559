// internal/service/skill.go
package service

import "go_5_care_plan/internal/model"

// 療育タイプごとの固定スキルセット。フロントエンドのラベルと一致させるため
// 名前は閉集合で、実行時に増減しません。
var skillNamesByType = map[string][]string{
	model.TherapySpeech:    {"Articulation", "Vocabulary", "Sentence Building", "Listening"},
	model.TherapyBehavior:  {"Attention Span", "Following Instructions", "Self-Regulation", "Social Interaction"},
	model.TherapyEmotional: {"Emotion Recognition", "Self-Expression", "Coping Skills", "Empathy"},
	model.TherapyMotor:     {"Fine Motor", "Gross Motor", "Coordination", "Balance"},
}

const skillCurvePoints = 8

// BuildSkillProgress は療育タイプと全体達成率から決定的なスキル推移曲線を
// 生成します。フィードバックにスキル単位の採点が無いため、これは平滑化された
// 推定 (estimate) であり、実測値ではありません。達成率が高いほど成長が
// 速くなるようバイアスし、4点目に一度だけ小さな落ち込みを入れます
// (単調増加だと推定であることがかえって伝わらないため)。
func BuildSkillProgress(therapyType string, completionRate int) *model.SkillProgress {
	names, ok := skillNamesByType[therapyType]
	if !ok {
		names = skillNamesByType[model.DefaultTherapyType]
		therapyType = model.DefaultTherapyType
	}

	boost := completionRate / 25 // 0-4

	progress := &model.SkillProgress{
		TherapyType: therapyType,
		Estimate:    true,
	}
	for skillIdx, name := range names {
		points := make([]int, 0, skillCurvePoints)
		value := 25 + skillIdx*5
		for step := 0; step < skillCurvePoints; step++ {
			if step > 0 {
				value += 5 + skillIdx + boost
			}
			if step == 4 {
				value -= 4
			}
			points = append(points, clampPercent(value))
		}
		progress.Skills = append(progress.Skills, model.SkillCurve{Name: name, Points: points})
	}
	return progress
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
