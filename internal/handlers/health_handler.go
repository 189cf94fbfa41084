package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_cards/internal/config"
	"go_4_vocab_cards/internal/middleware"
	"go_4_vocab_cards/internal/service"
	"go_4_vocab_cards/internal/webutil"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HealthHandler struct {
	status service.StatusService
}

func NewHealthHandler(s service.StatusService) *HealthHandler {
	return &HealthHandler{status: s}
}

// Health は暗記度の保存先に到達できるかを返します
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Health"))

	if err := h.status.Ping(r.Context()); err != nil {
		logger.Warn("Health check failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: config.AppVersion}, logger)
}
