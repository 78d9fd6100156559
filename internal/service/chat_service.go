// internal/service/chat_service.go
package service

import (
	"context"
	"fmt"

	"go_5_care_plan/internal/capability"
	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatService は相談チャットの薄い中継です。子どもと現在のプランの文脈を
// 組み立ててアシスタントに渡すだけで、会話履歴は保存しません。
type ChatService interface {
	Chat(ctx context.Context, actorID uuid.UUID, role string, req *model.ChatRequest) (*model.ChatResponse, error)
}

type chatService struct {
	db           *gorm.DB
	planRepo     repository.PlanRepository
	childService ChildService
	assistant    capability.ChatAssistant
	cfg          *config.Config
}

func NewChatService(db *gorm.DB, planRepo repository.PlanRepository, childService ChildService, assistant capability.ChatAssistant, cfg *config.Config) ChatService {
	return &chatService{
		db:           db,
		planRepo:     planRepo,
		childService: childService,
		assistant:    assistant,
		cfg:          cfg,
	}
}

func (s *chatService) Chat(ctx context.Context, actorID uuid.UUID, role string, req *model.ChatRequest) (*model.ChatResponse, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actorID)

	locale := req.Locale
	if locale == "" {
		locale = s.cfg.App.DefaultLocale
	}

	userContext := ""
	if req.ChildID != nil {
		child, err := s.childService.GetAuthorizedChild(ctx, *req.ChildID, actorID, role)
		if err != nil {
			return nil, err
		}
		userContext = fmt.Sprintf("子どもの名前: %s", child.Name)

		plans, err := s.planRepo.FindByChild(ctx, s.db, child.ChildID)
		if err != nil {
			logger.Warn("Could not load plans for chat context, continuing without plan context", "error", err)
		} else if latest := model.LatestPlan(plans); latest != nil {
			userContext = fmt.Sprintf("%s\n療育タイプ: %s\n現在のプラン概要: %s", userContext, latest.TherapyType, latest.Summary)
		}
	}

	reply, err := s.assistant.Chat(ctx, req.Messages, userContext, locale)
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{Reply: reply}, nil
}
