// internal/handlers/child_handler.go
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

type ChildHandler struct {
	service service.ChildService
	logger  *slog.Logger
}

func NewChildHandler(s service.ChildService, logger *slog.Logger) *ChildHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChildHandler{service: s, logger: logger}
}

// PostChild は新しい子どもを登録するためのハンドラ
func (h *ChildHandler) PostChild(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostChild"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateChildRequest
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

	child, err := h.service.CreateChild(r.Context(), actorID, role, &req)
	if err != nil {
		logger.Error("Error creating child in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child created successfully", "child_id", child.ChildID)
	webutil.RespondWithJSON(w, http.StatusCreated, child)
}

// LinkChild は識別番号とアクセスコードで既存の子どもにリンクするためのハンドラ
func (h *ChildHandler) LinkChild(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "LinkChild"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}

	var req model.LinkChildRequest
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

	child, err := h.service.LinkChild(r.Context(), actorID, role, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Child linked successfully", "child_id", child.ChildID)
	webutil.RespondWithJSON(w, http.StatusOK, child)
}

// GetChildren は自分にリンクされた子どもの一覧を取得するためのハンドラ
func (h *ChildHandler) GetChildren(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetChildren"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}

	children, err := h.service.ListChildren(r.Context(), actorID, role)
	if err != nil {
		logger.Error("Error listing children in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if children == nil {
		children = []*model.Child{}
	}
	logger.Info("Children listed successfully", "count", len(children))
	webutil.RespondWithJSON(w, http.StatusOK, children)
}
