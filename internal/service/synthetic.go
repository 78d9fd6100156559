// internal/service/synthetic.go
package service

import (
	"fmt"
	"math/rand"
	"time"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
)

// 合成フィードバックの帯域。日数を三等分し、後の帯域ほど成績を良くして
// 「練習すれば上達する」系列に見せます。
type syntheticBand struct {
	completionProb float64
	// easy / struggled の累積しきい値。残りが needs_practice
	easyProb      float64
	struggledProb float64
}

var syntheticBands = [3]syntheticBand{
	{completionProb: 0.5, easyProb: 0.20, struggledProb: 0.50}, // 序盤
	{completionProb: 0.7, easyProb: 0.40, struggledProb: 0.25}, // 中盤
	{completionProb: 0.9, easyProb: 0.65, struggledProb: 0.10}, // 終盤
}

var syntheticTaskNames = []string{
	"絵カードを使った発話練習",
	"指差しで要求を伝える練習",
	"順番を待つ遊び",
	"音まねゲーム",
	"ボタンはめの練習",
}

// GenerateSyntheticFeedback は過去 days 日分のサンプルフィードバックを
// 古い順に生成します。実データが1件も無い子どもの分析表示にのみ使い、
// 永続化は決してしません。rng を注入するのはシード固定のテストのためです。
func GenerateSyntheticFeedback(childID uuid.UUID, days int, rng *rand.Rand) []*model.SessionFeedback {
	if days <= 0 {
		return nil
	}

	now := time.Now()
	feedbacks := make([]*model.SessionFeedback, 0, days)

	for i := 0; i < days; i++ {
		band := syntheticBands[bandIndex(i, days)]

		feedback := model.FeedbackNeedsPractice
		switch r := rng.Float64(); {
		case r < band.easyProb:
			feedback = model.FeedbackEasy
		case r < band.easyProb+band.struggledProb:
			feedback = model.FeedbackStruggled
		}

		mood := syntheticMood(feedback, rng)

		// 古い日から順に、夕方の実施時刻 + 分単位のゆらぎ。系列は厳密に昇順
		day := now.AddDate(0, 0, -(days - 1 - i))
		completedAt := time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, day.Location()).
			Add(time.Duration(rng.Intn(45)) * time.Minute)
		// 当日分 (最終要素) が生成時刻より未来にならないよう now で打ち切る
		if completedAt.After(now) {
			completedAt = now
		}

		feedbacks = append(feedbacks, &model.SessionFeedback{
			FeedbackID:      uuid.New(),
			ChildID:         childID,
			TaskDescription: fmt.Sprintf("サンプル課題: %s", syntheticTaskNames[i%len(syntheticTaskNames)]),
			Feedback:        feedback,
			ChildMood:       &mood,
			Completed:       rng.Float64() < band.completionProb,
			CompletedAt:     completedAt,
			CreatedAt:       completedAt,
		})
	}

	return feedbacks
}

func bandIndex(i, days int) int {
	idx := i * 3 / days
	if idx > 2 {
		idx = 2
	}
	return idx
}

// syntheticMood はフィードバック内容と相関した気分を返します
// (easy なら happy 寄り、struggled なら frustrated 寄り)。
func syntheticMood(feedback string, rng *rand.Rand) string {
	r := rng.Float64()
	switch feedback {
	case model.FeedbackEasy:
		switch {
		case r < 0.70:
			return model.MoodHappy
		case r < 0.95:
			return model.MoodNeutral
		default:
			return model.MoodFrustrated
		}
	case model.FeedbackStruggled:
		switch {
		case r < 0.10:
			return model.MoodHappy
		case r < 0.40:
			return model.MoodNeutral
		default:
			return model.MoodFrustrated
		}
	default: // needs_practice
		switch {
		case r < 0.30:
			return model.MoodHappy
		case r < 0.70:
			return model.MoodNeutral
		default:
			return model.MoodFrustrated
		}
	}
}
