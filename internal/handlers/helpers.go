// internal/handlers/helpers.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/model"
	"go_5_care_plan/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requireActor はコンテキストから認証済みアクターのIDと役割を取り出します。
// 取り出せない場合はエラーレスポンスを書き込み、ok=false を返します。
func requireActor(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, string, bool) {
	actorID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, "", false
	}
	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt: role missing", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, "", false
	}
	return actorID, role, true
}

// parseUUIDParam はURLパラメータをUUIDとして解釈します。
// 形式不正の場合はエラーレスポンスを書き込み、ok=false を返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", "param", name, "value", raw, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
