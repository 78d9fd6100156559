// internal/service/calendar_service.go
package service

import (
	"strings"
	"time"

	"go_5_care_plan/internal/model"
)

const icsProdID = "-//go_5_care_plan//Treatment Plan//EN"

// BuildICS は治療プランを iCalendar テキストに変換します。課題iは今日からi日後の
// 終日イベントになり、30分前のリマインダ (VALARM) が付きます。
// 行末は RFC 5545 の規定どおり CRLF です。
func BuildICS(plan *model.TreatmentPlan, now time.Time) string {
	var b strings.Builder

	writeICSLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	writeICSLine("BEGIN:VCALENDAR")
	writeICSLine("VERSION:2.0")
	writeICSLine("PRODID:" + icsProdID)
	writeICSLine("CALSCALE:GREGORIAN")

	stamp := now.UTC().Format("20060102T150405Z")
	for i, task := range plan.DailyTasks {
		day := now.AddDate(0, 0, i)

		writeICSLine("BEGIN:VEVENT")
		writeICSLine("UID:" + task.TaskID + "@go_5_care_plan")
		writeICSLine("DTSTAMP:" + stamp)
		writeICSLine("DTSTART;VALUE=DATE:" + day.Format("20060102"))
		writeICSLine("SUMMARY:" + escapeICSText(task.Title))
		writeICSLine("DESCRIPTION:" + escapeICSText(task.Description))
		writeICSLine("BEGIN:VALARM")
		writeICSLine("TRIGGER:-PT30M")
		writeICSLine("ACTION:DISPLAY")
		writeICSLine("DESCRIPTION:" + escapeICSText(task.Title))
		writeICSLine("END:VALARM")
		writeICSLine("END:VEVENT")
	}

	writeICSLine("END:VCALENDAR")
	return b.String()
}

// escapeICSText は RFC 5545 §3.3.11 のテキストエスケープを行います。
func escapeICSText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
