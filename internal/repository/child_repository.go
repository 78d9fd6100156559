// internal/repository/child_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildRepository interface {
	Create(ctx context.Context, tx *gorm.DB, child *model.Child) error
	FindByID(ctx context.Context, db *gorm.DB, childID uuid.UUID) (*model.Child, error)
	FindByNationalID(ctx context.Context, db *gorm.DB, nationalID string) (*model.Child, error)
	FindByParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]*model.Child, error)
	FindByTherapist(ctx context.Context, db *gorm.DB, therapistID uuid.UUID) ([]*model.Child, error)
	Update(ctx context.Context, tx *gorm.DB, child *model.Child) error
}

type gormChildRepository struct{}

func NewGormChildRepository() ChildRepository {
	return &gormChildRepository{}
}

func (r *gormChildRepository) Create(ctx context.Context, tx *gorm.DB, child *model.Child) error {
	result := tx.WithContext(ctx).Create(child)
	if result.Error != nil {
		// national_id のユニーク制約違反 (同じ子どもの二重登録)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormChildRepository) FindByID(ctx context.Context, db *gorm.DB, childID uuid.UUID) (*model.Child, error) {
	var child model.Child
	result := db.WithContext(ctx).Where("child_id = ?", childID).First(&child)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &child, nil
}

func (r *gormChildRepository) FindByNationalID(ctx context.Context, db *gorm.DB, nationalID string) (*model.Child, error) {
	var child model.Child
	result := db.WithContext(ctx).Where("national_id = ?", nationalID).First(&child)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &child, nil
}

func (r *gormChildRepository) FindByParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]*model.Child, error) {
	var children []*model.Child
	result := db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&children)
	if result.Error != nil {
		return nil, result.Error
	}
	return children, nil
}

func (r *gormChildRepository) FindByTherapist(ctx context.Context, db *gorm.DB, therapistID uuid.UUID) ([]*model.Child, error) {
	var children []*model.Child
	result := db.WithContext(ctx).Where("therapist_id = ?", therapistID).Find(&children)
	if result.Error != nil {
		return nil, result.Error
	}
	return children, nil
}

func (r *gormChildRepository) Update(ctx context.Context, tx *gorm.DB, child *model.Child) error {
	result := tx.WithContext(ctx).Save(child)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
