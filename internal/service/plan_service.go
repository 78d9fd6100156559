// internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go_5_care_plan/internal/capability"
	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/repository"
	"go_5_care_plan/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanInput は生成パイプラインへの入力です。Document は任意です。
type PlanInput struct {
	Audio        []byte
	AudioMIME    string
	Document     []byte
	DocumentName string
	Locale       string
}

// PlanService は治療プラン生成パイプラインの組み立て役です。
// ステージの順序: 音声アップロード → 文字起こし → 要約 → 課題ごとの動画提案
// (並行) → 関連書類アップロード (任意) → 永続化。
// 必須ステージの失敗はプランを一切作らずに中断します (アップロード済みの
// メディアは残骸として許容し、再実行では新しいプランを作るだけなので冪等)。
// 任意ステージ (書類・動画提案) の失敗は警告付きで保存します。
type PlanService interface {
	GeneratePlan(ctx context.Context, therapistID, childID uuid.UUID, input *PlanInput) (*model.PlanResponse, error)
	GetCurrentPlan(ctx context.Context, childID uuid.UUID) (*model.TreatmentPlan, error)
	ListPlans(ctx context.Context, childID uuid.UUID) ([]*model.TreatmentPlan, error)
	AttachDemoVideo(ctx context.Context, therapistID, planID uuid.UUID, taskID string, video []byte, mimeType string) (*model.TreatmentPlan, error)
}

type planService struct {
	db          *gorm.DB
	planRepo    repository.PlanRepository
	childRepo   repository.ChildRepository
	userRepo    repository.UserRepository
	transcriber capability.Transcriber
	summarizer  capability.Summarizer
	suggester   capability.Suggester
	media       storage.MediaStore
	mailer      Mailer
	cfg         *config.Config
}

func NewPlanService(
	db *gorm.DB,
	planRepo repository.PlanRepository,
	childRepo repository.ChildRepository,
	userRepo repository.UserRepository,
	transcriber capability.Transcriber,
	summarizer capability.Summarizer,
	suggester capability.Suggester,
	media storage.MediaStore,
	mailer Mailer,
	cfg *config.Config,
) PlanService {
	return &planService{
		db:          db,
		planRepo:    planRepo,
		childRepo:   childRepo,
		userRepo:    userRepo,
		transcriber: transcriber,
		summarizer:  summarizer,
		suggester:   suggester,
		media:       media,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, therapistID, childID uuid.UUID, input *PlanInput) (*model.PlanResponse, error) {
	logger := middleware.GetLogger(ctx).With("child_id", childID, "therapist_id", therapistID)

	if len(input.Audio) == 0 {
		return nil, model.NewAppError("INVALID_REQUEST", "セッション音声が必要です。", "audio", model.ErrInvalidInput)
	}
	locale := input.Locale
	if locale == "" {
		locale = s.cfg.App.DefaultLocale
	}

	child, err := s.childRepo.FindByID(ctx, s.db, childID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CHILD_NOT_FOUND", "子どもが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "子どもの取得に失敗しました。", "", err)
	}
	if child.TherapistID == nil || *child.TherapistID != therapistID {
		return nil, model.NewAppError("FORBIDDEN", "この子どものプランを作成する権限がありません。", "", model.ErrForbidden)
	}

	// --- ステージ1: 音声アップロード (必須) ---
	audioURL, err := s.media.UploadAudio(ctx, childID, input.Audio, input.AudioMIME)
	if err != nil {
		logger.Error("Pipeline aborted: audio upload failed", "error", err)
		return nil, model.NewAppError("MEDIA_UPLOAD_FAILED", "音声のアップロードに失敗しました。最初からやり直してください。", "", model.ErrUpstream)
	}

	// --- ステージ2: 文字起こし (必須) ---
	transcript, err := s.transcriber.Transcribe(ctx, input.Audio, input.AudioMIME)
	if err != nil {
		logger.Error("Pipeline aborted: transcription failed", "error", err)
		return nil, err
	}

	// --- ステージ3: 要約 (必須)。検証・正規化・クランプは capability 側の責務 ---
	summary, err := s.summarizer.Summarize(ctx, transcript, locale)
	if err != nil {
		logger.Error("Pipeline aborted: summarization failed", "error", err)
		return nil, err
	}

	// --- ステージ4: 課題ごとの動画提案 (並行・部分失敗許容) ---
	tasks, missing := s.enrichTasks(ctx, summary.DailyTasks, locale)

	var warnings []string
	if missing > 0 {
		warnings = append(warnings, fmt.Sprintf("%d件の課題でお手本動画の提案を取得できませんでした。", missing))
	}

	// --- ステージ5: 関連書類アップロード (任意)。失敗してもプランは保存する ---
	documentURL := ""
	if len(input.Document) > 0 {
		documentURL, err = s.media.UploadDocument(ctx, childID, input.Document, input.DocumentName)
		if err != nil {
			logger.Warn("Document upload failed, plan will be saved without document URL", "error", err)
			warnings = append(warnings, "関連書類のアップロードに失敗したため、プランに書類は含まれていません。")
			documentURL = ""
		}
	}

	// 呼び出し元が途中で切断していた場合、発行済みの外部呼び出しの結果は
	// 永続化しない。保存直前の生存確認が唯一のチェックポイント
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Warn("Pipeline cancelled before persistence, discarding results")
		return nil, fmt.Errorf("plan generation cancelled before persistence: %w", ctxErr)
	}

	now := time.Now()
	plan := &model.TreatmentPlan{
		PlanID:      uuid.New(),
		ChildID:     childID,
		TherapistID: therapistID,
		Transcript:  transcript,
		Summary:     summary.Summary,
		TherapyType: summary.TherapyType,
		WeeklyGoals: summary.WeeklyGoals,
		DailyTasks:  tasks,
		AudioURL:    audioURL,
		DocumentURL: documentURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if createErr := s.planRepo.Create(ctx, tx, plan); createErr != nil {
			logger.Error("Error creating plan in repo", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "プランの保存に失敗しました。", "", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Treatment plan created",
		"plan_id", plan.PlanID,
		"therapy_type", plan.TherapyType,
		"task_count", len(plan.DailyTasks),
		"warnings", len(warnings),
	)

	// 保護者への通知はベストエフォート。失敗してもプランは成立している
	s.notifyParent(ctx, child, plan)

	return &model.PlanResponse{Plan: plan, Warnings: warnings}, nil
}

// enrichTasks は各課題に対して並行にお手本動画の提案を取得します。
// 1課題の失敗は他の課題に影響させず、提案なしのまま保持します
// (誤解を招くプレースホルダは入れない)。戻り値は提案を取得できなかった件数付き。
func (s *planService) enrichTasks(ctx context.Context, tasks []model.DailyTask, locale string) ([]model.DailyTask, int) {
	logger := middleware.GetLogger(ctx)

	enriched := make([]model.DailyTask, len(tasks))
	stamp := time.Now().UnixMilli()

	sem := make(chan struct{}, s.cfg.App.EnrichConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	missing := 0

	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task model.DailyTask) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			task.TaskID = fmt.Sprintf("task_%d_%d", stamp, i)
			task.Editable = true

			suggestion, err := s.suggester.SuggestDemoVideo(ctx, task.Description, locale)
			if err != nil {
				// 提案なしはレスポンス上も「無い」ことが見える状態で保存する
				logger.Warn("Demo video suggestion failed for task", "task_index", i, "error", err)
				mu.Lock()
				missing++
				mu.Unlock()
			} else {
				task.DemoVideoSuggestion = suggestion
			}

			enriched[i] = task
		}(i, task)
	}
	wg.Wait()

	return enriched, missing
}

func (s *planService) notifyParent(ctx context.Context, child *model.Child, plan *model.TreatmentPlan) {
	logger := middleware.GetLogger(ctx)

	if child.ParentID == nil {
		return
	}
	parent, err := s.userRepo.FindByID(ctx, s.db, *child.ParentID)
	if err != nil {
		logger.Warn("Could not load parent for plan notification", "error", err)
		return
	}

	subject := fmt.Sprintf("%sさんの新しいプランが届きました", child.Name)
	body := fmt.Sprintf("%sさんの新しい週間プランが作成されました。アプリからご確認ください。\n\n概要: %s", child.Name, plan.Summary)
	if err := s.mailer.Send(ctx, parent.Email, subject, body); err != nil {
		logger.Warn("Failed to send plan notification email", "error", err)
	}
}

func (s *planService) GetCurrentPlan(ctx context.Context, childID uuid.UUID) (*model.TreatmentPlan, error) {
	plans, err := s.planRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
	}

	// 「現在のプラン」は CreatedAt 最大のもの。判定は model.LatestPlan に一本化
	latest := model.LatestPlan(plans)
	if latest == nil {
		return nil, model.NewAppError("PLAN_NOT_FOUND", "プランがまだ作成されていません。", "", model.ErrNotFound)
	}
	return latest, nil
}

func (s *planService) ListPlans(ctx context.Context, childID uuid.UUID) ([]*model.TreatmentPlan, error) {
	plans, err := s.planRepo.FindByChild(ctx, s.db, childID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
	}
	return plans, nil
}

// AttachDemoVideo は人間がアップロードしたお手本動画を課題に添付します。
// パイプラインが付ける DemoVideoSuggestion とは独立です。
func (s *planService) AttachDemoVideo(ctx context.Context, therapistID, planID uuid.UUID, taskID string, video []byte, mimeType string) (*model.TreatmentPlan, error) {
	logger := middleware.GetLogger(ctx).With("plan_id", planID, "task_id", taskID)

	if len(video) == 0 {
		return nil, model.NewAppError("INVALID_REQUEST", "動画データが必要です。", "video", model.ErrInvalidInput)
	}

	plan, err := s.planRepo.FindByID(ctx, s.db, planID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PLAN_NOT_FOUND", "プランが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
	}
	if plan.TherapistID != therapistID {
		return nil, model.NewAppError("FORBIDDEN", "このプランを編集する権限がありません。", "", model.ErrForbidden)
	}

	taskIndex := -1
	for i, task := range plan.DailyTasks {
		if task.TaskID == taskID {
			taskIndex = i
			break
		}
	}
	if taskIndex < 0 {
		return nil, model.NewAppError("TASK_NOT_FOUND", "課題が見つかりません。", "task_id", model.ErrNotFound)
	}

	videoURL, err := s.media.UploadVideo(ctx, plan.ChildID, video, mimeType)
	if err != nil {
		logger.Error("Video upload failed", "error", err)
		return nil, model.NewAppError("MEDIA_UPLOAD_FAILED", "動画のアップロードに失敗しました。", "", model.ErrUpstream)
	}

	plan.DailyTasks[taskIndex].DemoVideoURL = videoURL
	plan.UpdatedAt = time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if updateErr := s.planRepo.Update(ctx, tx, plan); updateErr != nil {
			logger.Error("Error updating plan with demo video", "error", updateErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "プランの更新に失敗しました。", "", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Demo video attached to task")
	return plan, nil
}
