package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/journal-service/internal/services"
	"github.com/magabrotheeeer/journal-service/internal/storage/repository"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@example.com", "secret123").
					Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"jwt-token"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "пропущенные поля",
			requestBody:    Request{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email is a required field, field Password is a required field`,
		},
		{
			name: "пользователь не найден",
			requestBody: Request{
				Email:    "ghost@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ghost@example.com", "secret123").
					Return("", repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"User not found"`,
		},
		{
			name: "неверный пароль",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "wrong",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"Invalid credentials"`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@example.com", "secret123").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Something went wrong, try again later"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
