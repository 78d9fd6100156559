// internal/service/analytics_service.go
package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService は実施フィードバックから進捗レポートとスキル推移を導出します。
// すべて読み取り専用の導出であり、集計結果を永続化することはありません。
// 実データが1件も無い子どもにはサンプル系列 (synthetic) を代用し、
// レスポンスで synthetic=true を明示します。
type AnalyticsService interface {
	GetProgressReport(ctx context.Context, childID uuid.UUID) (*model.ProgressReport, error)
	GetSkillProgress(ctx context.Context, childID uuid.UUID) (*model.SkillProgress, error)
}

type analyticsService struct {
	db           *gorm.DB
	feedbackRepo repository.FeedbackRepository
	planRepo     repository.PlanRepository
	cfg          *config.Config
}

func NewAnalyticsService(db *gorm.DB, feedbackRepo repository.FeedbackRepository, planRepo repository.PlanRepository, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		db:           db,
		feedbackRepo: feedbackRepo,
		planRepo:     planRepo,
		cfg:          cfg,
	}
}

func (s *analyticsService) GetProgressReport(ctx context.Context, childID uuid.UUID) (*model.ProgressReport, error) {
	logger := middleware.GetLogger(ctx).With("child_id", childID)

	feedbacks, err := s.feedbackRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗レポートの作成に失敗しました。", "", err)
	}

	synthetic := false
	if len(feedbacks) == 0 {
		// 実データゼロの間だけサンプル系列を代用する (永続化はしない)
		logger.Info("No feedback history, generating synthetic series", "days", s.cfg.App.SyntheticDays)
		feedbacks = GenerateSyntheticFeedback(childID, s.cfg.App.SyntheticDays, rand.New(rand.NewSource(time.Now().UnixNano())))
		synthetic = true
	}

	report := buildProgressReport(feedbacks, time.Now())
	report.Synthetic = synthetic
	return report, nil
}

// buildProgressReport は集計の純粋関数部分です。now を注入してテスト可能にしています。
func buildProgressReport(feedbacks []*model.SessionFeedback, now time.Time) *model.ProgressReport {
	report := &model.ProgressReport{
		TotalSessions:  len(feedbacks),
		FeedbackCounts: map[string]int{},
		MoodCounts:     map[string]int{},
	}

	for _, f := range feedbacks {
		if f.Completed {
			report.CompletedCount++
		}
		report.FeedbackCounts[f.Feedback]++
		if f.ChildMood != nil {
			report.MoodCounts[*f.ChildMood]++
		}
	}
	report.CompletionRate = ratePercent(report.CompletedCount, report.TotalSessions)

	// 今日を末尾に含む7日間ウィンドウを4つ、古い週から順に並べる
	today := truncateToDay(now)
	for k := 0; k < 4; k++ {
		end := today.AddDate(0, 0, -7*(3-k))
		start := end.AddDate(0, 0, -6)

		var total, completed, withMood int
		for _, f := range feedbacks {
			d := truncateToDay(f.CompletedAt)
			if d.Before(start) || d.After(end) {
				continue
			}
			total++
			if f.Completed {
				completed++
			}
			if f.ChildMood != nil {
				withMood++
			}
		}

		report.WeeklyTrend = append(report.WeeklyTrend, model.WeeklySummary{
			WeekStart:      start,
			WeekEnd:        end,
			TasksCompleted: completed,
			TotalTasks:     total,
			CompletionRate: ratePercent(completed, total),
			EngagementRate: ratePercent(withMood, total),
		})
	}

	return report
}

func (s *analyticsService) GetSkillProgress(ctx context.Context, childID uuid.UUID) (*model.SkillProgress, error) {
	logger := middleware.GetLogger(ctx).With("child_id", childID)

	plans, err := s.planRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル推移の作成に失敗しました。", "", err)
	}

	therapyType := model.DefaultTherapyType
	if latest := model.LatestPlan(plans); latest != nil {
		therapyType = latest.TherapyType
	}

	feedbacks, err := s.feedbackRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル推移の作成に失敗しました。", "", err)
	}

	completed := 0
	for _, f := range feedbacks {
		if f.Completed {
			completed++
		}
	}
	completionRate := ratePercent(completed, len(feedbacks))

	logger.Debug("Building skill curves", "therapy_type", therapyType, "completion_rate", completionRate)
	return BuildSkillProgress(therapyType, completionRate), nil
}

// ratePercent は割合を 0-100 の整数パーセントに丸めます。母数0は0%です。
func ratePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
