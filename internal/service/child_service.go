// internal/service/child_service.go
package service

import (
	"context"
	"errors"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ChildService は子どもの登録と保護者・担当セラピストのリンクを担当します。
// セラピストが先に登録するケースと保護者が先に登録するケースの両方があり、
// 後からのリンクはマージです。既に別のアクターが占めているスロットへの
// リンクは必ず失敗させます (サイレントな上書きはしない)。
type ChildService interface {
	CreateChild(ctx context.Context, actorID uuid.UUID, role string, req *model.CreateChildRequest) (*model.Child, error)
	LinkChild(ctx context.Context, actorID uuid.UUID, role string, req *model.LinkChildRequest) (*model.Child, error)
	ListChildren(ctx context.Context, actorID uuid.UUID, role string) ([]*model.Child, error)
	GetAuthorizedChild(ctx context.Context, childID, actorID uuid.UUID, role string) (*model.Child, error)
}

type childService struct {
	db        *gorm.DB
	childRepo repository.ChildRepository
}

func NewChildService(db *gorm.DB, childRepo repository.ChildRepository) ChildService {
	return &childService{db: db, childRepo: childRepo}
}

func (s *childService) CreateChild(ctx context.Context, actorID uuid.UUID, role string, req *model.CreateChildRequest) (*model.Child, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actorID, "role", role)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AccessCode), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash access code", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの登録に失敗しました。", "", model.ErrInternalServer)
	}

	child := &model.Child{
		ChildID:        uuid.New(),
		NationalID:     req.NationalID,
		Name:           req.Name,
		AccessCodeHash: string(hash),
	}
	// 作成したアクター側のスロットだけを埋める。もう一方は後からのリンクで埋まる
	switch role {
	case model.RoleTherapist:
		child.TherapistID = &actorID
	case model.RoleParent:
		child.ParentID = &actorID
	default:
		return nil, model.NewAppError("FORBIDDEN", "子どもを登録できる権限がありません。", "", model.ErrForbidden)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if createErr := s.childRepo.Create(ctx, tx, child); createErr != nil {
			if errors.Is(createErr, model.ErrConflict) {
				// national_id は初回設定後は不変。二重登録ではなくリンクを案内する
				return model.NewAppError("CHILD_ALREADY_REGISTERED", "この識別番号の子どもは既に登録されています。リンク機能を利用してください。", "national_id", model.ErrConflict)
			}
			logger.Error("Error creating child in repo", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの登録に失敗しました。", "", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Child created", "child_id", child.ChildID)
	return child, nil
}

func (s *childService) LinkChild(ctx context.Context, actorID uuid.UUID, role string, req *model.LinkChildRequest) (*model.Child, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actorID, "role", role)

	var linked *model.Child
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		child, findErr := s.childRepo.FindByNationalID(ctx, tx, req.NationalID)
		if findErr != nil {
			if errors.Is(findErr, model.ErrNotFound) {
				return model.NewAppError("CHILD_NOT_FOUND", "指定された識別番号の子どもが見つかりません。", "national_id", model.ErrNotFound)
			}
			logger.Error("Error finding child by national ID", "error", findErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リンク処理に失敗しました。", "", findErr)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(child.AccessCodeHash), []byte(req.AccessCode)); err != nil {
			logger.Warn("Link failed: access code mismatch", "child_id", child.ChildID)
			return model.NewAppError("ACCESS_CODE_MISMATCH", "アクセスコードが正しくありません。", "access_code", model.ErrForbidden)
		}

		// リンクはマージ: 空いているスロットを埋める。同一アクターの再リンクは何もしない
		var slot **uuid.UUID
		switch role {
		case model.RoleTherapist:
			slot = &child.TherapistID
		case model.RoleParent:
			slot = &child.ParentID
		default:
			return model.NewAppError("FORBIDDEN", "リンクできる権限がありません。", "", model.ErrForbidden)
		}

		if *slot != nil {
			if **slot == actorID {
				// 既に自分がリンク済み (no-op)
				linked = child
				return nil
			}
			logger.Warn("Link conflict: slot already occupied by another actor", "child_id", child.ChildID)
			return model.NewAppError("LINK_CONFLICT", "この子どもには既に別の担当者がリンクされています。", "", model.ErrConflict)
		}

		*slot = &actorID
		if updateErr := s.childRepo.Update(ctx, tx, child); updateErr != nil {
			logger.Error("Error updating child link", "error", updateErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リンク処理に失敗しました。", "", updateErr)
		}
		linked = child
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Child linked", "child_id", linked.ChildID)
	return linked, nil
}

func (s *childService) ListChildren(ctx context.Context, actorID uuid.UUID, role string) ([]*model.Child, error) {
	switch role {
	case model.RoleTherapist:
		return s.childRepo.FindByTherapist(ctx, s.db, actorID)
	case model.RoleParent:
		return s.childRepo.FindByParent(ctx, s.db, actorID)
	default:
		return nil, model.NewAppError("FORBIDDEN", "閲覧できる権限がありません。", "", model.ErrForbidden)
	}
}

// GetAuthorizedChild は子どもを取得し、アクターがその子どもにリンク済みで
// あることを確認します。未リンクのアクターからのアクセスは拒否します。
func (s *childService) GetAuthorizedChild(ctx context.Context, childID, actorID uuid.UUID, role string) (*model.Child, error) {
	child, err := s.childRepo.FindByID(ctx, s.db, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CHILD_NOT_FOUND", "子どもが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの取得に失敗しました。", "", err)
	}

	var linkedID *uuid.UUID
	switch role {
	case model.RoleTherapist:
		linkedID = child.TherapistID
	case model.RoleParent:
		linkedID = child.ParentID
	}
	if linkedID == nil || *linkedID != actorID {
		return nil, model.NewAppError("FORBIDDEN", "この子どもへのアクセス権限がありません。", "", model.ErrForbidden)
	}

	return child, nil
}
