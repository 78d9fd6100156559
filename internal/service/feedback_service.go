// internal/service/feedback_service.go
package service

import (
	"context"
	"time"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackService は保護者による実施フィードバックの記録を担当します。
// フィードバックは追記専用で、更新・削除操作は提供しません。
type FeedbackService interface {
	RecordFeedback(ctx context.Context, childID uuid.UUID, req *model.CreateFeedbackRequest) (*model.SessionFeedback, error)
	ListFeedback(ctx context.Context, childID uuid.UUID) ([]*model.SessionFeedback, error)
}

type feedbackService struct {
	db           *gorm.DB
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(db *gorm.DB, feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{db: db, feedbackRepo: feedbackRepo}
}

func (s *feedbackService) RecordFeedback(ctx context.Context, childID uuid.UUID, req *model.CreateFeedbackRequest) (*model.SessionFeedback, error) {
	logger := middleware.GetLogger(ctx).With("child_id", childID)

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	feedback := &model.SessionFeedback{
		FeedbackID:      uuid.New(),
		ChildID:         childID,
		TaskDescription: req.TaskDescription,
		Feedback:        req.Feedback,
		ChildMood:       req.ChildMood,
		Notes:           req.Notes,
		Completed:       req.Completed,
		CompletedAt:     completedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if createErr := s.feedbackRepo.Create(ctx, tx, feedback); createErr != nil {
			logger.Error("Error creating feedback in repo", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "フィードバックの保存に失敗しました。", "", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session feedback recorded", "feedback_id", feedback.FeedbackID, "feedback", feedback.Feedback)
	return feedback, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, childID uuid.UUID) ([]*model.SessionFeedback, error) {
	feedbacks, err := s.feedbackRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "フィードバックの取得に失敗しました。", "", err)
	}
	return feedbacks, nil
}
