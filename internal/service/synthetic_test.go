// internal/service/synthetic_test.go
package service

import (
	"math/rand"
	"testing"
	"time"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateSyntheticFeedback(t *testing.T) {
	childID := uuid.New()

	t.Run("指定日数分を古い順に生成する", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		feedbacks := GenerateSyntheticFeedback(childID, 14, rng)

		require.Len(t, feedbacks, 14)
		for i, f := range feedbacks {
			assert.Equal(t, childID, f.ChildID)
			assert.NotEqual(t, uuid.Nil, f.FeedbackID)
			assert.NotEmpty(t, f.TaskDescription)
			assert.Contains(t, []string{model.FeedbackEasy, model.FeedbackStruggled, model.FeedbackNeedsPractice}, f.Feedback)
			require.NotNil(t, f.ChildMood)
			assert.Contains(t, []string{model.MoodHappy, model.MoodNeutral, model.MoodFrustrated}, *f.ChildMood)
			if i > 0 {
				assert.True(t, f.CompletedAt.After(feedbacks[i-1].CompletedAt), "CompletedAtは厳密に昇順であること")
			}
		}
	})

	t.Run("終盤の帯域は序盤より完了率が高い傾向", func(t *testing.T) {
		// 帯域ごとの確率差 (0.5 vs 0.9) は大きいので、十分な日数なら安定して差が出る
		rng := rand.New(rand.NewSource(42))
		feedbacks := GenerateSyntheticFeedback(childID, 90, rng)
		require.Len(t, feedbacks, 90)

		countCompleted := func(fs []*model.SessionFeedback) int {
			n := 0
			for _, f := range fs {
				if f.Completed {
					n++
				}
			}
			return n
		}
		early := countCompleted(feedbacks[:30])
		late := countCompleted(feedbacks[60:])
		assert.Greater(t, late, early)
	})

	t.Run("同じシードなら同じ系列", func(t *testing.T) {
		a := GenerateSyntheticFeedback(childID, 14, rand.New(rand.NewSource(7)))
		b := GenerateSyntheticFeedback(childID, 14, rand.New(rand.NewSource(7)))
		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].Feedback, b[i].Feedback)
			assert.Equal(t, a[i].Completed, b[i].Completed)
			assert.Equal(t, *a[i].ChildMood, *b[i].ChildMood)
		}
	})

	t.Run("生成時刻より未来のタイムスタンプは作らない", func(t *testing.T) {
		// 当日分は夕方の時刻が基準なので、夕方前に生成すると now での打ち切りが効く
		rng := rand.New(rand.NewSource(3))
		feedbacks := GenerateSyntheticFeedback(childID, 14, rng)
		now := time.Now()

		require.Len(t, feedbacks, 14)
		for _, f := range feedbacks {
			assert.False(t, f.CompletedAt.After(now), "CompletedAtは生成時刻を超えないこと")
		}
	})

	t.Run("日数0以下はnil", func(t *testing.T) {
		assert.Nil(t, GenerateSyntheticFeedback(childID, 0, rand.New(rand.NewSource(1))))
		assert.Nil(t, GenerateSyntheticFeedback(childID, -3, rand.New(rand.NewSource(1))))
	})
}

func Test_bandIndex(t *testing.T) {
	// 14日を三等分: 0-4日目が序盤、5-9日目が中盤、10-13日目が終盤
	assert.Equal(t, 0, bandIndex(0, 14))
	assert.Equal(t, 0, bandIndex(4, 14))
	assert.Equal(t, 1, bandIndex(5, 14))
	assert.Equal(t, 1, bandIndex(9, 14))
	assert.Equal(t, 2, bandIndex(10, 14))
	assert.Equal(t, 2, bandIndex(13, 14))
}
