package summary

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
	"github.com/magabrotheeeer/journal-service/internal/services"
)

// MockService реализует интерфейс summary.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Summarize(ctx context.Context, userUID string, filter models.DummySummaryFilter) ([]models.SummaryBucket, error) {
	args := m.Called(ctx, userUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SummaryBucket), args.Error(1)
}

func TestSummaryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешная сводка по неделям",
			url:     "/journalSummary?period=weekly&startDate=2024-01-01&endDate=2024-01-31",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Summarize", mock.Anything, "user-1", models.DummySummaryFilter{
					Period:    "weekly",
					StartDate: "2024-01-01",
					EndDate:   "2024-01-31",
				}).Return([]models.SummaryBucket{
					{Bucket: "2024-W01", EntryCount: 2, Titles: "First,Second"},
					{Bucket: "2024-W02", EntryCount: 1, Titles: "Third"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"period":"2024-W01"`,
		},
		{
			name:           "пропущенные параметры",
			url:            "/journalSummary?period=weekly",
			userUID:        "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field StartDate is a required field, field EndDate is a required field`,
		},
		{
			name:           "отсутствует авторизация",
			url:            "/journalSummary?period=weekly&startDate=2024-01-01&endDate=2024-01-31",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "неизвестный период",
			url:     "/journalSummary?period=yearly&startDate=2024-01-01&endDate=2024-01-31",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Summarize", mock.Anything, "user-1", mock.AnythingOfType("models.DummySummaryFilter")).
					Return(nil, services.ErrInvalidPeriod)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid period specified"`,
		},
		{
			name:    "некорректная дата",
			url:     "/journalSummary?period=daily&startDate=01-01-2024&endDate=2024-01-31",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Summarize", mock.Anything, "user-1", mock.AnythingOfType("models.DummySummaryFilter")).
					Return(nil, services.ErrInvalidDateFormat)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid date format"`,
		},
		{
			name:    "пустой диапазон — успех с пустым списком",
			url:     "/journalSummary?period=daily&startDate=2024-01-01&endDate=2024-01-31",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Summarize", mock.Anything, "user-1", mock.AnythingOfType("models.DummySummaryFilter")).
					Return([]models.SummaryBucket{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"journals":[]`,
		},
		{
			name:    "ошибка сервиса",
			url:     "/journalSummary?period=daily&startDate=2024-01-01&endDate=2024-01-31",
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Summarize", mock.Anything, "user-1", mock.AnythingOfType("models.DummySummaryFilter")).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not build summary"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

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
