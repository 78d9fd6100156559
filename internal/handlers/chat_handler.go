// internal/handlers/chat_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/service"
	"go_5_care_plan/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ChatHandler struct {
	service service.ChatService
	logger  *slog.Logger
}

func NewChatHandler(s service.ChatService, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{service: s, logger: logger}
}

// PostChat は相談チャットのメッセージを送信するためのハンドラ
func (h *ChatHandler) PostChat(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostChat"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}

	var req model.ChatRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.Chat(r.Context(), actorID, role, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
