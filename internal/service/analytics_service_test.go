// internal/service/analytics_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/model"
	repomocks "go_5_care_plan/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAnalytics() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfigAnalytics() *config.Config {
	cfg := &config.Config{}
	cfg.App.SyntheticDays = 14
	return cfg
}

func feedbackAt(childID uuid.UUID, daysAgo int, completed bool, feedback string, mood *string) *model.SessionFeedback {
	return &model.SessionFeedback{
		FeedbackID:  uuid.New(),
		ChildID:     childID,
		Feedback:    feedback,
		ChildMood:   mood,
		Completed:   completed,
		CompletedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func Test_buildProgressReport(t *testing.T) {
	childID := uuid.New()
	now := time.Now()
	happy := model.MoodHappy

	t.Run("全体統計と週次トレンド", func(t *testing.T) {
		feedbacks := []*model.SessionFeedback{
			feedbackAt(childID, 0, true, model.FeedbackEasy, &happy),
			feedbackAt(childID, 1, true, model.FeedbackEasy, nil),
			feedbackAt(childID, 2, false, model.FeedbackStruggled, &happy),
			feedbackAt(childID, 10, true, model.FeedbackNeedsPractice, nil),
		}

		report := buildProgressReport(feedbacks, now)

		assert.Equal(t, 4, report.TotalSessions)
		assert.Equal(t, 3, report.CompletedCount)
		assert.Equal(t, 75, report.CompletionRate)
		assert.Equal(t, 2, report.FeedbackCounts[model.FeedbackEasy])
		assert.Equal(t, 1, report.FeedbackCounts[model.FeedbackStruggled])
		assert.Equal(t, 1, report.FeedbackCounts[model.FeedbackNeedsPractice])
		assert.Equal(t, 2, report.MoodCounts[model.MoodHappy])

		require.Len(t, report.WeeklyTrend, 4)
		// 古い週から順に並ぶ
		for i := 1; i < len(report.WeeklyTrend); i++ {
			assert.True(t, report.WeeklyTrend[i].WeekStart.After(report.WeeklyTrend[i-1].WeekStart))
		}
		// 最終ウィンドウは今日を含む直近7日
		last := report.WeeklyTrend[3]
		assert.Equal(t, 3, last.TotalTasks)
		assert.Equal(t, 2, last.TasksCompleted)
		assert.Equal(t, 67, last.CompletionRate)
		assert.Equal(t, 67, last.EngagementRate) // 3件中2件に気分の記録あり
		// 10日前のレコードは1つ前のウィンドウに入る
		assert.Equal(t, 1, report.WeeklyTrend[2].TotalTasks)
		assert.Equal(t, 100, report.WeeklyTrend[2].CompletionRate)
	})

	t.Run("全件完了なら100%", func(t *testing.T) {
		feedbacks := []*model.SessionFeedback{
			feedbackAt(childID, 0, true, model.FeedbackEasy, nil),
			feedbackAt(childID, 1, true, model.FeedbackEasy, nil),
		}
		report := buildProgressReport(feedbacks, now)
		assert.Equal(t, 100, report.CompletionRate)
	})

	t.Run("レコード0件なら全て0 (ゼロ除算しない)", func(t *testing.T) {
		report := buildProgressReport(nil, now)
		assert.Equal(t, 0, report.TotalSessions)
		assert.Equal(t, 0, report.CompletionRate)
		require.Len(t, report.WeeklyTrend, 4)
		for _, week := range report.WeeklyTrend {
			assert.Equal(t, 0, week.TotalTasks)
			assert.Equal(t, 0, week.CompletionRate)
			assert.Equal(t, 0, week.EngagementRate)
		}
	})
}

func Test_analyticsService_GetProgressReport_SyntheticFallback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAnalytics()
	childID := uuid.New()

	feedbackRepo := new(repomocks.FeedbackRepository)
	planRepo := new(repomocks.PlanRepository)
	svc := NewAnalyticsService(db, feedbackRepo, planRepo, testConfigAnalytics())

	t.Run("実データが無ければサンプル系列で補完しsynthetic=true", func(t *testing.T) {
		feedbackRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.SessionFeedback{}, nil).Once()

		report, err := svc.GetProgressReport(ctx, childID)

		require.NoError(t, err)
		assert.True(t, report.Synthetic)
		assert.Equal(t, 14, report.TotalSessions)
		require.Len(t, report.WeeklyTrend, 4)
	})

	t.Run("実データが1件でもあればsynthetic=false", func(t *testing.T) {
		happy := model.MoodHappy
		feedbackRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.SessionFeedback{feedbackAt(childID, 0, true, model.FeedbackEasy, &happy)}, nil).Once()

		report, err := svc.GetProgressReport(ctx, childID)

		require.NoError(t, err)
		assert.False(t, report.Synthetic)
		assert.Equal(t, 1, report.TotalSessions)
	})
}

func Test_analyticsService_GetSkillProgress(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAnalytics()
	childID := uuid.New()

	feedbackRepo := new(repomocks.FeedbackRepository)
	planRepo := new(repomocks.PlanRepository)
	svc := NewAnalyticsService(db, feedbackRepo, planRepo, testConfigAnalytics())

	t.Run("最新プランの療育タイプを使う", func(t *testing.T) {
		planRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.TreatmentPlan{
				{PlanID: uuid.New(), TherapyType: model.TherapySpeech, CreatedAt: time.Now().AddDate(0, 0, -7)},
				{PlanID: uuid.New(), TherapyType: model.TherapyMotor, CreatedAt: time.Now()},
			}, nil).Once()
		feedbackRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.SessionFeedback{}, nil).Once()

		progress, err := svc.GetSkillProgress(ctx, childID)

		require.NoError(t, err)
		assert.Equal(t, model.TherapyMotor, progress.TherapyType)
		assert.True(t, progress.Estimate)
	})

	t.Run("プランが無ければデフォルトのbehavior", func(t *testing.T) {
		planRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.TreatmentPlan{}, nil).Once()
		feedbackRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.SessionFeedback{}, nil).Once()

		progress, err := svc.GetSkillProgress(ctx, childID)

		require.NoError(t, err)
		assert.Equal(t, model.TherapyBehavior, progress.TherapyType)
	})
}

func Test_ratePercent(t *testing.T) {
	assert.Equal(t, 0, ratePercent(0, 0))
	assert.Equal(t, 0, ratePercent(5, 0))
	assert.Equal(t, 100, ratePercent(3, 3))
	assert.Equal(t, 50, ratePercent(1, 2))
	assert.Equal(t, 67, ratePercent(2, 3))
	assert.Equal(t, 33, ratePercent(1, 3))
}
