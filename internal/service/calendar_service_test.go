// internal/service/calendar_service_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"go_5_care_plan/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_BuildICS(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	plan := &model.TreatmentPlan{
		PlanID: uuid.New(),
		DailyTasks: []model.DailyTask{
			{TaskID: "task_1_0", Title: "音まねゲーム", Description: "動物の鳴き声をまねする"},
			{TaskID: "task_1_1", Title: "絵カード", Description: "絵カードで単語を言う"},
		},
	}

	ics := BuildICS(plan, now)

	t.Run("カレンダー全体の構造", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
		assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
		assert.Contains(t, ics, "VERSION:2.0\r\n")
		assert.Contains(t, ics, "PRODID:-//go_5_care_plan//Treatment Plan//EN\r\n")
		assert.Contains(t, ics, "CALSCALE:GREGORIAN\r\n")
		assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
		assert.Equal(t, 2, strings.Count(ics, "END:VEVENT"))
	})

	t.Run("課題iは今日からi日後の終日イベント", func(t *testing.T) {
		assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260831")
		assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260901")
		assert.Contains(t, ics, "UID:task_1_0@go_5_care_plan")
		assert.Contains(t, ics, "UID:task_1_1@go_5_care_plan")
		assert.Contains(t, ics, "DTSTAMP:20260831T103000Z")
		assert.Contains(t, ics, "SUMMARY:音まねゲーム")
	})

	t.Run("各イベントに30分前のリマインダが付く", func(t *testing.T) {
		assert.Equal(t, 2, strings.Count(ics, "BEGIN:VALARM"))
		assert.Equal(t, 2, strings.Count(ics, "TRIGGER:-PT30M"))
		assert.Equal(t, 2, strings.Count(ics, "ACTION:DISPLAY"))
	})

	t.Run("全行がCRLFで終わる", func(t *testing.T) {
		for _, line := range strings.Split(strings.TrimSuffix(ics, "\r\n"), "\r\n") {
			assert.NotContains(t, line, "\n")
			assert.NotContains(t, line, "\r")
		}
	})

	t.Run("課題が無ければイベントも無い", func(t *testing.T) {
		empty := BuildICS(&model.TreatmentPlan{PlanID: uuid.New()}, now)
		assert.NotContains(t, empty, "BEGIN:VEVENT")
		assert.Contains(t, empty, "BEGIN:VCALENDAR")
	})
}

func Test_escapeICSText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "エスケープ不要", input: "音まねゲーム", want: "音まねゲーム"},
		{name: "カンマとセミコロン", input: "a,b;c", want: `a\,b\;c`},
		{name: "バックスラッシュ", input: `a\b`, want: `a\\b`},
		{name: "改行", input: "1行目\n2行目", want: `1行目\n2行目`},
		{name: "CRLF改行", input: "1行目\r\n2行目", want: `1行目\n2行目`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeICSText(tt.input))
		})
	}
}
