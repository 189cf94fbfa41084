// internal/handlers/word_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_4_vocab_cards/internal/handlers"
	"go_4_vocab_cards/internal/model"
	"go_4_vocab_cards/internal/service/mocks"
)

func TestWordHandler_GetWords(t *testing.T) {
	doc := json.RawMessage(`[{"単語":"你好","拼音":"nǐ hǎo"}]`)

	tests := []struct {
		name           string
		setupMock      func(svc *mocks.VocabularyService)
		expectedStatus int
		expectedBody   string
		expectedError  string
	}{
		{
			name: "正常系: ドキュメントをそのまま返す",
			setupMock: func(svc *mocks.VocabularyService) {
				svc.On("GetWords", mock.Anything).Return(doc, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   string(doc),
		},
		{
			name: "異常系: 読み込み失敗は500",
			setupMock: func(svc *mocks.VocabularyService) {
				appErr := model.NewAppError("WORDS_UNAVAILABLE", "failed to read words", "", fmt.Errorf("%w: no such file", model.ErrInternalServer))
				svc.On("GetWords", mock.Anything).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to read words",
		},
		{
			name: "異常系: 想定外のエラーは汎用メッセージ",
			setupMock: func(svc *mocks.VocabularyService) {
				svc.On("GetWords", mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewVocabularyService(t)
			tc.setupMock(mockService)
			handler := handlers.NewWordHandler(mockService, testLogger)
			router := chi.NewRouter()
			router.Get("/api/words", handler.GetWords)

			req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			verifyErrorResponse(t, rr.Body.Bytes(), tc.expectedError, tc.name)
		})
	}
}
