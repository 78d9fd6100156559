// internal/repository/plan_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRepository は治療プランの永続化境界です。
// 取得は等価条件のみで行い、「現在のプラン」の決定 (CreatedAt 最大) は
// 必ず呼び出し側が model.LatestPlan で行います。特定のインデックスに
// 依存しないよう、ソートをストアに任せることはしません。
type PlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *model.TreatmentPlan) error
	FindByID(ctx context.Context, db *gorm.DB, planID uuid.UUID) (*model.TreatmentPlan, error)
	FindByChild(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]*model.TreatmentPlan, error)
	Update(ctx context.Context, tx *gorm.DB, plan *model.TreatmentPlan) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.TreatmentPlan) error {
	result := tx.WithContext(ctx).Create(plan)
	return result.Error
}

func (r *gormPlanRepository) FindByID(ctx context.Context, db *gorm.DB, planID uuid.UUID) (*model.TreatmentPlan, error) {
	var plan model.TreatmentPlan
	result := db.WithContext(ctx).Where("plan_id = ?", planID).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByChild(ctx context.Context, db *gorm.DB, childID uuid.UUID) ([]*model.TreatmentPlan, error) {
	var plans []*model.TreatmentPlan
	result := db.WithContext(ctx).Where("child_id = ?", childID).Find(&plans)
	if result.Error != nil {
		return nil, result.Error
	}
	return plans, nil
}

func (r *gormPlanRepository) Update(ctx context.Context, tx *gorm.DB, plan *model.TreatmentPlan) error {
	result := tx.WithContext(ctx).Save(plan)
	return result.Error
}
