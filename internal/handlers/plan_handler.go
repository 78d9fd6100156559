// internal/handlers/plan_handler.go
package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/service"
	"go_5_care_plan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// multipartメモリ上限。超過分はテンポラリファイルに落ちる
const maxMultipartMemory = 32 << 20

type PlanHandler struct {
	planService  service.PlanService
	childService service.ChildService
	logger       *slog.Logger
}

func NewPlanHandler(planService service.PlanService, childService service.ChildService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{
		planService:  planService,
		childService: childService,
		logger:       logger,
	}
}

// GeneratePlan はセッション音声から治療プランを生成するためのハンドラ。
// multipart/form-data で audio (必須)、document (任意)、locale (任意) を受け取ります。
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GeneratePlan"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}
	if role != model.RoleTherapist {
		logger.Warn("Non-therapist attempted plan generation", "role", role)
		appErr := model.NewAppError("FORBIDDEN", "プランを作成できるのはセラピストのみです。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	childID, ok := parseUUIDParam(w, r, logger, "child_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("child_id", childID.String()))

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data形式のリクエストが必要です。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	audioFile, audioHeader, err := r.FormFile("audio")
	if err != nil {
		logger.Warn("Audio file missing in request", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST", "セッション音声ファイル (audio) が必要です。", "audio", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer audioFile.Close()

	audio, err := io.ReadAll(audioFile)
	if err != nil {
		logger.Error("Failed to read audio file", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST", "音声ファイルの読み込みに失敗しました。", "audio", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	input := &service.PlanInput{
		Audio:     audio,
		AudioMIME: audioHeader.Header.Get("Content-Type"),
		Locale:    r.FormValue("locale"),
	}

	// 関連書類は任意。無ければそのままパイプラインに進む
	if docFile, docHeader, docErr := r.FormFile("document"); docErr == nil {
		defer docFile.Close()
		document, readErr := io.ReadAll(docFile)
		if readErr != nil {
			logger.Warn("Failed to read document file, continuing without it", "error", readErr)
		} else {
			input.Document = document
			input.DocumentName = docHeader.Filename
		}
	}

	resp, err := h.planService.GeneratePlan(r.Context(), actorID, childID, input)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan generated successfully", "plan_id", resp.Plan.PlanID)
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// GetCurrentPlan は子どもの現在のプラン (最新のプラン) を取得するためのハンドラ
func (h *PlanHandler) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCurrentPlan"))

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

	webutil.RespondWithJSON(w, http.StatusOK, plan)
}

// GetPlans は子どものプラン履歴を取得するためのハンドラ
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetPlans"))

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

	plans, err := h.planService.ListPlans(r.Context(), childID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if plans == nil {
		plans = []*model.TreatmentPlan{}
	}
	logger.Info("Plans listed successfully", "count", len(plans))
	webutil.RespondWithJSON(w, http.StatusOK, plans)
}

// AttachDemoVideo は課題にお手本動画をアップロードして添付するためのハンドラ。
// multipart/form-data で video (必須) を受け取ります。
func (h *PlanHandler) AttachDemoVideo(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "AttachDemoVideo"))

	actorID, role, ok := requireActor(w, r, logger)
	if !ok {
		return
	}
	if role != model.RoleTherapist {
		logger.Warn("Non-therapist attempted demo video upload", "role", role)
		appErr := model.NewAppError("FORBIDDEN", "お手本動画を添付できるのはセラピストのみです。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	planID, ok := parseUUIDParam(w, r, logger, "plan_id")
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "task_id")
	if taskID == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "task_idが必要です。", "task_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data形式のリクエストが必要です。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	videoFile, videoHeader, err := r.FormFile("video")
	if err != nil {
		logger.Warn("Video file missing in request", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST", "動画ファイル (video) が必要です。", "video", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer videoFile.Close()

	video, err := io.ReadAll(videoFile)
	if err != nil {
		logger.Error("Failed to read video file", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST", "動画ファイルの読み込みに失敗しました。", "video", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	plan, err := h.planService.AttachDemoVideo(r.Context(), actorID, planID, taskID, video, videoHeader.Header.Get("Content-Type"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Demo video attached successfully", "plan_id", plan.PlanID, "task_id", taskID)
	webutil.RespondWithJSON(w, http.StatusOK, plan)
}
