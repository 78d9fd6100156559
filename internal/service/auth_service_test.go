// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/model"
	repomocks "go_5_care_plan/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfigAuth() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryHours = 24
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	req := &model.RegisterRequest{
		Role:     model.RoleTherapist,
		Name:     "山田花子",
		Email:    "hanako@example.com",
		Password: "password123",
	}

	t.Run("正常系: パスワードはハッシュ化して保存", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(db, userRepo, testConfigAuth())

		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*model.User)
				assert.NotEqual(t, uuid.Nil, user.UserID)
				assert.Equal(t, model.RoleTherapist, user.Role)
				assert.NotEqual(t, req.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			}).Return(nil).Once()

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, req.Email, user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("異常系: メールアドレス重複は409", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(db, userRepo, testConfigAuth())

		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		user, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, user)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := testConfigAuth()
	password := "password123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &model.User{
		UserID:       uuid.New(),
		Role:         model.RoleParent,
		Name:         "山田花子",
		Email:        "hanako@example.com",
		PasswordHash: string(hash),
	}

	t.Run("正常系: 有効なJWTが発行される", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(db, userRepo, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: password})

		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, storedUser.UserID, resp.User.UserID)

		// 発行されたトークンを検証し、クレームを確認する
		claims := &model.JWTCustomClaims{}
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, storedUser.UserID.String(), claims.Subject)
		assert.Equal(t, model.RoleParent, claims.Role)
	})

	t.Run("異常系: パスワード不一致は存在有無を明かさないエラー", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(db, userRepo, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: "wrong-password"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
	})

	t.Run("異常系: 未登録メールも同じエラー", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(db, userRepo, cfg)

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "unknown@example.com").
			Return(nil, model.ErrNotFound).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "unknown@example.com", Password: password})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
	})
}
