package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_4_vocab_cards/internal/model"
)

// 実ファイルに繋いだルーターで words → status 保存 → 読み戻しの流れを確認する
func TestRouter_Integration(t *testing.T) {
	server := httptest.NewServer(testRouter)
	defer server.Close()

	t.Run("正常系: 単語データ", func(t *testing.T) {
		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/words"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		var entries []model.VocabularyEntry
		require.NoError(t, json.Unmarshal(body, &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "你好", entries[0].Word)
		assert.Equal(t, "你好，老师。", entries[0].Examples[0].ForeignText)
		assert.Empty(t, entries[1].Examples)
	})

	t.Run("正常系: 保存前の暗記度は空", func(t *testing.T) {
		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/status"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		assert.JSONEq(t, `{}`, string(body))
	})

	t.Run("正常系: 保存して読み戻す", func(t *testing.T) {
		_, body := sendRequest(t, server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/status",
				Body:    model.StatusMap{"0_0": 2, "w_1": 0},
				Headers: map[string]string{"X-Request-ID": "client-req-1"},
			},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		assert.JSONEq(t, `{"ok":true}`, string(body))

		_, body = sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/status"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		assert.JSONEq(t, `{"0_0":2,"w_1":0}`, string(body))
	})

	t.Run("異常系: 不正なボディ", func(t *testing.T) {
		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodPost, Path: "/api/status", Body: "not json"},
			httpResponseExpectations{ExpectedCode: http.StatusBadRequest})
		verifyErrorResponse(t, body, "invalid status body", "invalid body")
	})

	t.Run("正常系: ヘルスチェックとメトリクス", func(t *testing.T) {
		sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/health"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/metrics"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		assert.Contains(t, string(body), "vocab_cards_http_requests_total")
		assert.Contains(t, string(body), `route="/api/status"`)
	})

	t.Run("正常系: CORSプリフライト", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/status", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := executeRequest(req)
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("異常系: 存在しないルート", func(t *testing.T) {
		rr := executeRequest(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
