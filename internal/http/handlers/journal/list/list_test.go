package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userUID string) ([]*models.JournalEntry, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JournalEntry), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешный список",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user-1").
					Return([]*models.JournalEntry{
						{ID: "entry-1"},
						{ID: "entry-2"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name:           "отсутствует авторизация",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "у пользователя нет записей",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user-1").
					Return([]*models.JournalEntry{}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"No journals found"`,
		},
		{
			name:    "ошибка сервиса",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user-1").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not list journal entries"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/getAllJournals", nil)

			ctx := req.Context()
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
