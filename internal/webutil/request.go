package webutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go_4_vocab_cards/internal/model"
)

// maxBodyBytes は受け付けるリクエストボディの上限 (暗記度マップ全体が入る大きさ)
const maxBodyBytes = 8 << 20

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty body: %w", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty body: %w", model.ErrInvalidInput)
		}
		return fmt.Errorf("decode body: %v: %w", err, model.ErrInvalidInput)
	}
	// JSON 値の後ろに余計なデータがあれば不正とする
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON body: %w", model.ErrInvalidInput)
	}
	return nil
}
