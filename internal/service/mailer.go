// internal/service/mailer.go
package service

import (
	"context"
	"log/slog"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"
)

// Mailer は「プランができました」通知の送信境界です。送信失敗は呼び出し側で
// 警告ログに留め、パイプラインの成否には影響させません。
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer は開発環境用で、実送信の代わりにログに出力します
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMailer は設定に応じた Mailer 実装を返すファクトリです
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "ses":
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(cfg)
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}
