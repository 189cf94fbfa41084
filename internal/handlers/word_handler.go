// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"go_4_vocab_cards/internal/service"
	"go_4_vocab_cards/internal/webutil"
)

type WordHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewWordHandler(s service.VocabularyService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetWords は単語例文ドキュメントを保存されたまま返すハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"), slog.String("req_id", chimiddleware.GetReqID(r.Context())))

	words, err := h.service.GetWords(r.Context())
	if err != nil {
		logger.Error("Failed to get words", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Debug("Words returned", slog.Int("bytes", len(words)))
	webutil.RespondWithRawJSON(w, http.StatusOK, words, logger)
}
