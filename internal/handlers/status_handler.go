package handlers

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"go_4_vocab_cards/internal/model"
	"go_4_vocab_cards/internal/service"
	"go_4_vocab_cards/internal/webutil"
)

type StatusHandler struct {
	service service.StatusService
	logger  *slog.Logger
}

func NewStatusHandler(s service.StatusService, logger *slog.Logger) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusHandler{
		service: s,
		logger:  logger,
	}
}

// GetStatus は暗記度マップを返します。読めない場合もエラーにせず {} を返します。
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStatus"), slog.String("req_id", chimiddleware.GetReqID(r.Context())))

	statuses, err := h.service.GetStatus(r.Context())
	if err != nil {
		logger.Error("Failed to read status, responding with empty map", slog.Any("error", err))
		statuses = model.StatusMap{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, statuses, logger)
}

// PostStatus はボディの暗記度マップ全体で保存内容を置き換えます
func (h *StatusHandler) PostStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStatus"), slog.String("req_id", chimiddleware.GetReqID(r.Context())))

	var statuses model.StatusMap
	if err := webutil.DecodeJSONBody(w, r, &statuses); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid status body", "", err)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.SaveStatus(r.Context(), statuses); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Status saved", slog.Int("entries", len(statuses)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SaveStatusResponse{OK: true}, logger)
}
