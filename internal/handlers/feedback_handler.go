// internal/handlers/feedback_handler.go
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

type FeedbackHandler struct {
	feedbackService service.FeedbackService
	childService    service.ChildService
	logger          *slog.Logger
}

func NewFeedbackHandler(feedbackService service.FeedbackService, childService service.ChildService, logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackHandler{
		feedbackService: feedbackService,
		childService:    childService,
		logger:          logger,
	}
}

// PostFeedback は実施フィードバックを記録するためのハンドラ
func (h *FeedbackHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostFeedback"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}
	childID, ok := parseUUIDParam(w, r, logger, "child_id")
	if !ok {
		return
	}

	if _, err := h.childService.GetAuthorizedChild(r.Context(), childID, actorID, role); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateFeedbackRequest
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

	feedback, err := h.feedbackService.RecordFeedback(r.Context(), childID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Feedback recorded successfully", "feedback_id", feedback.FeedbackID)
	webutil.RespondWithJSON(w, http.StatusCreated, feedback)
}

// GetFeedback は子どものフィードバック履歴を取得するためのハンドラ
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetFeedback"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}
	childID, ok := parseUUIDParam(w, r, logger, "child_id")
	if !ok {
		return
	}

	if _, err := h.childService.GetAuthorizedChild(r.Context(), childID, actorID, role); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	feedbacks, err := h.feedbackService.ListFeedback(r.Context(), childID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if feedbacks == nil {
		feedbacks = []*model.SessionFeedback{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, feedbacks)
}
