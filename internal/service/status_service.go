//go:generate mockery --name StatusService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"

	"go_4_vocab_cards/internal/metrics"
	"go_4_vocab_cards/internal/model"
	"go_4_vocab_cards/internal/repository"
)

type StatusService interface {
	GetStatus(ctx context.Context) (model.StatusMap, error)
	// SaveStatus はマップ全体で保存済みの内容を置き換えます
	SaveStatus(ctx context.Context, statuses model.StatusMap) error
	Ping(ctx context.Context) error
}

type statusService struct {
	repo    repository.StatusRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewStatusService(repo repository.StatusRepository, m *metrics.Metrics, logger *slog.Logger) StatusService {
	return &statusService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

func (s *statusService) GetStatus(ctx context.Context) (model.StatusMap, error) {
	statuses, err := s.repo.Load(ctx)
	if err != nil {
		s.metrics.RecordRead("status", metrics.ResultError)
		return nil, fmt.Errorf("statusService.GetStatus: %w", err)
	}
	s.metrics.RecordRead("status", metrics.ResultOK)
	if statuses == nil {
		statuses = model.StatusMap{}
	}
	return statuses, nil
}

func (s *statusService) SaveStatus(ctx context.Context, statuses model.StatusMap) error {
	if statuses == nil {
		statuses = model.StatusMap{}
	}
	if err := s.repo.Save(ctx, statuses); err != nil {
		s.metrics.RecordWrite(metrics.ResultError)
		s.logger.Error("Failed to save status", slog.Any("error", err), slog.Int("entries", len(statuses)))
		return model.NewAppError("SAVE_FAILED", "failed to save", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
	}
	s.metrics.RecordWrite(metrics.ResultOK)
	s.metrics.StatusEntries.Set(float64(len(statuses)))
	return nil
}

func (s *statusService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return model.NewAppError("STORE_UNAVAILABLE", "store unavailable", "", fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err))
	}
	return nil
}
