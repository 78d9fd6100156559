// internal/repository/plan_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan(childID uuid.UUID) *model.TreatmentPlan {
	category := "communication"
	now := time.Now()
	return &model.TreatmentPlan{
		PlanID:      uuid.New(),
		ChildID:     childID,
		TherapistID: uuid.New(),
		Transcript:  "今日は発話の練習をしました。",
		Summary:     "発話の機会を増やす段階です。",
		TherapyType: model.TherapySpeech,
		WeeklyGoals: model.WeeklyGoals{
			{Goal: "発話の機会を増やす", Category: &category},
		},
		DailyTasks: []model.DailyTask{
			{TaskID: "task_1_0", Title: "音まねゲーム", Description: "動物の鳴き声をまねする", WeeklyGoalIndex: 0, Editable: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func Test_gormPlanRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPlanRepository()

	t.Run("正常系: JSONカラムの往復で目標と課題が保たれる", func(t *testing.T) {
		db := setupRepoTestDB(t)
		childID := uuid.New()
		plan := newTestPlan(childID)

		require.NoError(t, repo.Create(ctx, db, plan))

		found, err := repo.FindByID(ctx, db, plan.PlanID)
		require.NoError(t, err)
		require.Len(t, found.WeeklyGoals, 1)
		assert.Equal(t, "発話の機会を増やす", found.WeeklyGoals[0].Goal)
		require.NotNil(t, found.WeeklyGoals[0].Category)
		assert.Equal(t, "communication", *found.WeeklyGoals[0].Category)
		require.Len(t, found.DailyTasks, 1)
		assert.Equal(t, "task_1_0", found.DailyTasks[0].TaskID)
		assert.True(t, found.DailyTasks[0].Editable)

		plans, err := repo.FindByChild(ctx, db, childID)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, plan.PlanID, plans[0].PlanID)
	})

	t.Run("正常系: 旧形式の文字列配列weekly_goalsカラムも読み出し時に正規化される", func(t *testing.T) {
		db := setupRepoTestDB(t)
		planID := uuid.New()

		// 旧スキーマで保存された行を直接挿入する (目標がただの文字列の配列)
		result := db.Exec(
			`INSERT INTO treatment_plans
			   (plan_id, child_id, therapist_id, transcript, summary, therapy_type, weekly_goals, daily_tasks, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			planID, uuid.New(), uuid.New(),
			"書き起こし", "要約", model.TherapyBehavior,
			`["順番を待てるようになる","気持ちを言葉にする"]`, `[]`,
			time.Now(), time.Now(),
		)
		require.NoError(t, result.Error)

		found, err := repo.FindByID(ctx, db, planID)
		require.NoError(t, err)
		require.Len(t, found.WeeklyGoals, 2)
		assert.Equal(t, "順番を待てるようになる", found.WeeklyGoals[0].Goal)
		assert.Nil(t, found.WeeklyGoals[0].Category)
		assert.Equal(t, "気持ちを言葉にする", found.WeeklyGoals[1].Goal)
		assert.Nil(t, found.WeeklyGoals[1].Category)
	})

	t.Run("異常系: 存在しないプランはErrNotFound", func(t *testing.T) {
		db := setupRepoTestDB(t)

		found, err := repo.FindByID(ctx, db, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, found)
	})
}

func Test_gormPlanRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPlanRepository()

	t.Run("正常系: 課題への動画URL追記が永続化される", func(t *testing.T) {
		db := setupRepoTestDB(t)
		plan := newTestPlan(uuid.New())
		require.NoError(t, repo.Create(ctx, db, plan))

		plan.DailyTasks[0].DemoVideoURL = "https://media.example.com/videos/demo.mp4"
		plan.UpdatedAt = time.Now()
		require.NoError(t, repo.Update(ctx, db, plan))

		found, err := repo.FindByID(ctx, db, plan.PlanID)
		require.NoError(t, err)
		assert.Equal(t, "https://media.example.com/videos/demo.mp4", found.DailyTasks[0].DemoVideoURL)
	})
}
