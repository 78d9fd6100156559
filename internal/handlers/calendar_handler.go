// internal/handlers/calendar_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/service"
	"go_5_care_plan/internal/webutil"
)

type CalendarHandler struct {
	planService  service.PlanService
	childService service.ChildService
	logger       *slog.Logger
}

func NewCalendarHandler(planService service.PlanService, childService service.ChildService, logger *slog.Logger) *CalendarHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarHandler{
		planService:  planService,
		childService: childService,
		logger:       logger,
	}
}

// GetCalendar は現在のプランの課題を iCalendar 形式でエクスポートするためのハンドラ
func (h *CalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCalendar"))

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

	plan, err := h.planService.GetCurrentPlan(r.Context(), childID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	ics := service.BuildICS(plan, time.Now())

	logger.Info("Calendar exported", "plan_id", plan.PlanID, "task_count", len(plan.DailyTasks))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="treatment_plan.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ics))
}
