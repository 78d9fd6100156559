// internal/repository/feedback_repository.go
package repository

import (
	"context"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository は実施フィードバックの永続化境界です。
// レコードは不変のため、作成と子ども単位の取得のみを提供します。
type FeedbackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *model.SessionFeedback) error
	FindByChild(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]*model.SessionFeedback, error)
}

type gormFeedbackRepository struct{}

func NewGormFeedbackRepository() FeedbackRepository {
	return &gormFeedbackRepository{}
}

func (r *gormFeedbackRepository) Create(ctx context.Context, tx *gorm.DB, feedback *model.SessionFeedback) error {
	result := tx.WithContext(ctx).Create(feedback)
	return result.Error
}

func (r *gormFeedbackRepository) FindByChild(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]*model.SessionFeedback, error) {
	var feedbacks []*model.SessionFeedback
	result := db.WithContext(ctx).Where("child_id = ?", childID).Find(&feedbacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return feedbacks, nil
}
