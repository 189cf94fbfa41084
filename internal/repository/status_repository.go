//go:generate mockery --name StatusRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go_4_vocab_cards/internal/middleware"
	"go_4_vocab_cards/internal/model"

	"gorm.io/gorm"
)

// StatusRepository は暗記度ドキュメントを丸ごと読み書きします。
// 保存は常に全体の上書きで、ロックやマージは行いません (最後の書き込みが勝つ)。
type StatusRepository interface {
	Load(ctx context.Context) (model.StatusMap, error)
	Save(ctx context.Context, statuses model.StatusMap) error
	Ping(ctx context.Context) error
}

// --- JSON ファイル実装 ---

type jsonStatusRepository struct {
	path string
}

func NewJSONStatusRepository(path string) StatusRepository {
	return &jsonStatusRepository{path: path}
}

// Load はファイルが無ければ空のマップを返します
func (r *jsonStatusRepository) Load(ctx context.Context) (model.StatusMap, error) {
	logger := middleware.GetLogger(ctx)
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("Status file not found, using empty map", "path", r.path)
			return model.StatusMap{}, nil
		}
		logger.Error("Error reading status file", "error", err, "path", r.path)
		return nil, fmt.Errorf("jsonStatusRepository.Load: %w", err)
	}

	var statuses model.StatusMap
	if err := json.Unmarshal(data, &statuses); err != nil {
		logger.Error("Error decoding status file", "error", err, "path", r.path)
		return nil, fmt.Errorf("jsonStatusRepository.Load: %w", err)
	}
	if statuses == nil {
		statuses = model.StatusMap{}
	}
	return statuses, nil
}

func (r *jsonStatusRepository) Save(ctx context.Context, statuses model.StatusMap) error {
	logger := middleware.GetLogger(ctx)
	if statuses == nil {
		statuses = model.StatusMap{}
	}
	data, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("jsonStatusRepository.Save: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("Error writing status file", "error", err, "path", r.path)
		return fmt.Errorf("jsonStatusRepository.Save: %w", err)
	}
	return nil
}

// Ping は保存先ディレクトリが存在するかを確認します
func (r *jsonStatusRepository) Ping(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("jsonStatusRepository.Ping: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("jsonStatusRepository.Ping: %s is not a directory", dir)
	}
	return nil
}

// --- GORM 実装 ---

type gormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) StatusRepository {
	return &gormStatusRepository{db: db}
}

func (r *gormStatusRepository) Load(ctx context.Context) (model.StatusMap, error) {
	logger := middleware.GetLogger(ctx)
	var rows []model.CardStatus
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		logger.Error("Error loading card statuses from DB", "error", err)
		return nil, fmt.Errorf("gormStatusRepository.Load: %w", err)
	}
	statuses := make(model.StatusMap, len(rows))
	for _, row := range rows {
		statuses[row.CardID] = row.Status
	}
	return statuses, nil
}

// Save はテーブルを空にしてから全件を入れ直します (ファイル実装と同じ全体上書き)
func (r *gormStatusRepository) Save(ctx context.Context, statuses model.StatusMap) error {
	logger := middleware.GetLogger(ctx)
	rows := make([]model.CardStatus, 0, len(statuses))
	for id, code := range statuses {
		rows = append(rows, model.CardStatus{CardID: id, Status: code})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CardStatus{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		logger.Error("Error saving card statuses to DB", "error", err, "count", len(rows))
		return fmt.Errorf("gormStatusRepository.Save: %w", err)
	}
	return nil
}

func (r *gormStatusRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("gormStatusRepository.Ping: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("gormStatusRepository.Ping: %w", err)
	}
	return nil
}
