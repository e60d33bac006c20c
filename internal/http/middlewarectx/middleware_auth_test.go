package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/journal-service/internal/lib/jwt"
)

// MockParser реализует интерфейс TokenParser
type MockParser struct {
	mock.Mock
}

func (m *MockParser) ParseToken(tokenStr string) (*jwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.CustomClaims), args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockParser)
		expectedStatus int
		expectNext     bool
		expectedUID    string
	}{
		{
			name:       "валидный токен пропускается дальше",
			authHeader: "Bearer good-token",
			setupMock: func(m *MockParser) {
				m.On("ParseToken", "good-token").
					Return(&jwt.CustomClaims{UserUID: "user-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedUID:    "user-1",
		},
		{
			name:           "отсутствует заголовок",
			authHeader:     "",
			setupMock:      func(_ *MockParser) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     "Token abc",
			setupMock:      func(_ *MockParser) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "истёкший токен",
			authHeader: "Bearer expired-token",
			setupMock: func(m *MockParser) {
				m.On("ParseToken", "expired-token").
					Return(nil, jwt.ErrTokenExpired)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "неверная подпись",
			authHeader: "Bearer tampered-token",
			setupMock: func(m *MockParser) {
				m.On("ParseToken", "tampered-token").
					Return(nil, jwt.ErrTokenSignatureInvalid)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "повреждённый токен",
			authHeader: "Bearer garbage",
			setupMock: func(m *MockParser) {
				m.On("ParseToken", "garbage").
					Return(nil, jwt.ErrTokenMalformed)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockParser := new(MockParser)
			tt.setupMock(mockParser)

			nextCalled := false
			var gotUID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUID, _ = r.Context().Value(UserUID).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(mockParser, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/getAllJournals", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, tt.expectedUID, gotUID)
			} else {
				// Клиент видит одинаковый ответ для любого вида отказа.
				assert.Contains(t, w.Body.String(), `{"status":"Error","error":"unauthorized"}`)
			}
			mockParser.AssertExpectations(t)
		})
	}
}
