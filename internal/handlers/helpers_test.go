// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_4_vocab_cards/internal/model"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode     int
	ExpectedErrorMsg string
	// 成功時のレスポンスボディの具体的な型はテスト毎に異なるため、
	// 検証は呼び出し側で行うか、より汎用的な検証関数を別途用意します。
	// ここではステータスとエラーメッセージの検証に留めます。
}

// sendRequest はHTTPリクエストを送信し、基本的なレスポンス情報を返します。
// ステータスコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	// デフォルトヘッダー
	if details.Body != nil && reqBodyReader != nil { // ボディがある場合のみデフォルトでJSONを設定
		req.Header.Set("Content-Type", "application/json")
	}
	// カスタムヘッダー
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	client := server.Client()
	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	return resp.StatusCode, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのボディを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedErrorMsgPart string, tcName string) {
	t.Helper()
	if expectedErrorMsgPart == "" {
		return // 期待するエラーメッセージがない場合は何もしない
	}

	var errResp model.APIError
	err := json.Unmarshal(bodyBytes, &errResp)
	if err == nil {
		assert.True(t, strings.Contains(errResp.Error, expectedErrorMsgPart),
			"Expected error msg part '%s' in JSON msg '%s' for test case '%s'", expectedErrorMsgPart, errResp.Error, tcName)
	} else {
		assert.True(t, strings.Contains(string(bodyBytes), expectedErrorMsgPart),
			"Expected error msg part '%s' in raw body '%s' for test case '%s'", expectedErrorMsgPart, string(bodyBytes), tcName)
	}
}
