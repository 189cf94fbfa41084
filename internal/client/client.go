// Package client は study 画面から Data Store の API を呼び出します
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go_4_vocab_cards/internal/model"
)

// ErrSaveFailed は暗記度の保存が成功しなかったことを表します
var ErrSaveFailed = errors.New("save failed")

// Client は /api 配下のエンドポイントを呼ぶHTTPクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New は baseURL (例: http://localhost:3001/api) に対するクライアントを返します
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchWords は単語データを取得します。
// 取得・デコードに失敗した場合や配列でない場合は空のスライスを返し、エラーにはしません。
func (c *Client) FetchWords(ctx context.Context) []model.VocabularyEntry {
	logger := c.logger.With(slog.String("op", "FetchWords"))

	body, err := c.get(ctx, "/words")
	if err != nil {
		logger.Warn("Failed to fetch words, using empty list", slog.Any("error", err))
		return []model.VocabularyEntry{}
	}

	var entries []model.VocabularyEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		logger.Warn("Words response is not an array, using empty list", slog.Any("error", err))
		return []model.VocabularyEntry{}
	}
	if entries == nil {
		entries = []model.VocabularyEntry{}
	}
	logger.Info("Words fetched", slog.Int("entries", len(entries)))
	return entries
}

// FetchStatus は暗記度マップを取得します。失敗した場合は空のマップを返します。
func (c *Client) FetchStatus(ctx context.Context) model.StatusMap {
	logger := c.logger.With(slog.String("op", "FetchStatus"))

	body, err := c.get(ctx, "/status")
	if err != nil {
		logger.Warn("Failed to fetch status, using empty map", slog.Any("error", err))
		return model.StatusMap{}
	}

	var statuses model.StatusMap
	if err := json.Unmarshal(body, &statuses); err != nil || statuses == nil {
		logger.Warn("Status response is not an object, using empty map", slog.Any("error", err))
		return model.StatusMap{}
	}
	return statuses
}

// SaveStatus は暗記度マップ全体を送信します。2xx 以外はエラーです。
func (c *Client) SaveStatus(ctx context.Context, statuses model.StatusMap) error {
	reqID := uuid.NewString()
	logger := c.logger.With(slog.String("op", "SaveStatus"), slog.String("client_req_id", reqID))

	payload, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("client.SaveStatus: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/status", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("client.SaveStatus: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Save request failed", slog.Any("error", err))
		return fmt.Errorf("client.SaveStatus: %w: %v", ErrSaveFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr model.APIError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &apiErr)
		logger.Warn("Save rejected by server", slog.Int("status", resp.StatusCode), slog.String("error", apiErr.Error))
		return fmt.Errorf("client.SaveStatus: %w: status %d", ErrSaveFailed, resp.StatusCode)
	}

	logger.Debug("Status saved", slog.Int("entries", len(statuses)))
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
