//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go_4_vocab_cards/internal/middleware"
	"go_4_vocab_cards/internal/model"
)

// VocabularyRepository は単語例文ドキュメントを丸ごと読み出します
type VocabularyRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Path() string
}

type fileVocabularyRepository struct {
	path string
}

func NewFileVocabularyRepository(path string) VocabularyRepository {
	return &fileVocabularyRepository{path: path}
}

func (r *fileVocabularyRepository) Path() string {
	return r.path
}

// Load はファイルの中身をそのまま返します。JSONとして読めない場合はエラーです。
// 配列かどうかの判定はクライアントに任せます。
func (r *fileVocabularyRepository) Load(ctx context.Context) ([]byte, error) {
	logger := middleware.GetLogger(ctx)
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Words file not found", "path", r.path)
			return nil, fmt.Errorf("fileVocabularyRepository.Load: %w", model.ErrNotFound)
		}
		logger.Error("Error reading words file", "error", err, "path", r.path)
		return nil, fmt.Errorf("fileVocabularyRepository.Load: %w", err)
	}
	if !json.Valid(data) {
		logger.Error("Words file is not valid JSON", "path", r.path, "bytes", len(data))
		return nil, fmt.Errorf("fileVocabularyRepository.Load: %s is not valid JSON", r.path)
	}
	return data, nil
}
