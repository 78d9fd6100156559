// internal/handlers/analytics_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/service"
	"go_5_care_plan/internal/webutil"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	childService     service.ChildService
	logger           *slog.Logger
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, childService service.ChildService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		childService:     childService,
		logger:           logger,
	}
}

// GetProgress は子どもの進捗レポートを取得するためのハンドラ
func (h *AnalyticsHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

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

	report, err := h.analyticsService.GetProgressReport(r.Context(), childID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, report)
}

// GetSkills は子どものスキル推移 (推定) を取得するためのハンドラ
func (h *AnalyticsHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetSkills"))

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

	skills, err := h.analyticsService.GetSkillProgress(r.Context(), childID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, skills)
}
