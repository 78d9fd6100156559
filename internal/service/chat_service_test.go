// internal/service/chat_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	capmocks "go_5_care_plan/internal/capability/mocks"
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

func setupTestDBChat() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfigChat() *config.Config {
	cfg := &config.Config{}
	cfg.App.DefaultLocale = "ja"
	return cfg
}

func Test_chatService_Chat(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	childID := uuid.New()

	messages := []model.ChatMessage{{Role: "user", Content: "最近かんしゃくが増えています。"}}

	t.Run("子ども指定なしは文脈なしで中継", func(t *testing.T) {
		db := setupTestDBChat()
		planRepo := new(repomocks.PlanRepository)
		childRepo := new(repomocks.ChildRepository)
		assistant := new(capmocks.ChatAssistant)
		svc := NewChatService(db, planRepo, NewChildService(db, childRepo), assistant, testConfigChat())

		assistant.On("Chat", ctx, messages, "", "ja").
			Return("かんしゃくの背景には要求の伝えにくさがあるかもしれません。", nil).Once()

		resp, err := svc.Chat(ctx, actorID, model.RoleParent, &model.ChatRequest{Messages: messages})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Reply)
		assistant.AssertExpectations(t)
	})

	t.Run("子ども指定ありは名前と現在のプラン概要を文脈に含める", func(t *testing.T) {
		db := setupTestDBChat()
		planRepo := new(repomocks.PlanRepository)
		childRepo := new(repomocks.ChildRepository)
		assistant := new(capmocks.ChatAssistant)
		svc := NewChatService(db, planRepo, NewChildService(db, childRepo), assistant, testConfigChat())

		childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return(&model.Child{ChildID: childID, Name: "たろう", ParentID: &actorID}, nil).Once()
		planRepo.On("FindByChild", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return([]*model.TreatmentPlan{
				{PlanID: uuid.New(), TherapyType: model.TherapyBehavior, Summary: "行動調整に取り組み中。", CreatedAt: time.Now()},
			}, nil).Once()
		assistant.On("Chat", ctx, messages, mock.MatchedBy(func(userContext string) bool {
			return strings.Contains(userContext, "たろう") &&
				strings.Contains(userContext, "behavior") &&
				strings.Contains(userContext, "行動調整に取り組み中。")
		}), "ja").Return("プランの課題と合わせて様子を見ましょう。", nil).Once()

		resp, err := svc.Chat(ctx, actorID, model.RoleParent, &model.ChatRequest{ChildID: &childID, Messages: messages})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Reply)
		assistant.AssertExpectations(t)
	})

	t.Run("未リンクの子どもを指定したら403", func(t *testing.T) {
		db := setupTestDBChat()
		planRepo := new(repomocks.PlanRepository)
		childRepo := new(repomocks.ChildRepository)
		assistant := new(capmocks.ChatAssistant)
		svc := NewChatService(db, planRepo, NewChildService(db, childRepo), assistant, testConfigChat())

		other := uuid.New()
		childRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), childID).
			Return(&model.Child{ChildID: childID, ParentID: &other}, nil).Once()

		resp, err := svc.Chat(ctx, actorID, model.RoleParent, &model.ChatRequest{ChildID: &childID, Messages: messages})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
		assistant.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
