//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"go_4_vocab_cards/internal/metrics"
	"go_4_vocab_cards/internal/model"
	"go_4_vocab_cards/internal/repository"
)

const wordsCacheKey = "words"

type VocabularyService interface {
	// GetWords は単語例文ドキュメントを保存されたままのバイト列で返します
	GetWords(ctx context.Context) (json.RawMessage, error)
	// Invalidate はキャッシュを破棄します。ファイル更新時に呼ばれます。
	Invalidate()
}

type vocabularyService struct {
	repo    repository.VocabularyRepository
	cache   *cache.Cache // ttl が 0 以下なら nil (毎回ファイルを読む)
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewVocabularyService は ttl の間ドキュメントをメモリに保持するサービスを返します。
// go-cache は 0 を無期限として扱うため、ttl が 0 以下のときはキャッシュしません。
func NewVocabularyService(repo repository.VocabularyRepository, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) VocabularyService {
	s := &vocabularyService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *vocabularyService) GetWords(ctx context.Context) (json.RawMessage, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(wordsCacheKey); found {
			s.metrics.RecordRead("words", metrics.ResultCacheHit)
			return cached.(json.RawMessage), nil
		}
	}

	data, err := s.repo.Load(ctx)
	if err != nil {
		s.metrics.RecordRead("words", metrics.ResultError)
		s.logger.Error("Failed to load words", slog.Any("error", err), slog.String("path", s.repo.Path()))
		// ファイルが無い場合も 500 として返す
		return nil, model.NewAppError("WORDS_UNAVAILABLE", "failed to read words", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
	}
	s.metrics.RecordRead("words", metrics.ResultOK)

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err == nil {
		s.metrics.VocabularyEntries.Set(float64(len(entries)))
	} else {
		s.logger.Warn("Words document is not an array", slog.String("path", s.repo.Path()))
	}

	raw := json.RawMessage(data)
	if s.cache != nil {
		s.cache.SetDefault(wordsCacheKey, raw)
	}
	return raw, nil
}

func (s *vocabularyService) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(wordsCacheKey)
	}
	s.logger.Info("Words cache invalidated")
}
