// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService はアカウント登録とログイン (JWT発行) を担当します。
// 認証はこのシステムの中核ではなく、あくまでAPI利用のための薄い境界です。
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "登録処理に失敗しました。", "", model.ErrInternalServer)
	}

	user := &model.User{
		UserID:       uuid.New(),
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if createErr := s.userRepo.Create(ctx, tx, user); createErr != nil {
			if errors.Is(createErr, model.ErrConflict) {
				return model.NewAppError("EMAIL_ALREADY_REGISTERED", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)
			}
			logger.Error("Error creating user in repo", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "登録処理に失敗しました。", "", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID, "role", user.Role)
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// アカウントの存在有無は返さない
			return nil, model.NewAppError("LOGIN_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Error finding user by email", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ログイン処理に失敗しました。", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("LOGIN_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("User logged in", "user_id", user.UserID, "role", user.Role)
	return &model.LoginResponse{
		AccessToken: token,
		User:        user.ToResponse(),
	}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := model.JWTCustomClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
