package journalservice

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/journal-service/internal/lib/jwt"
	"github.com/magabrotheeeer/journal-service/internal/lib/password"
	"github.com/magabrotheeeer/journal-service/internal/services"
)

func newTestRouter(t *testing.T) (chi.Router, string) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	maker := jwt.NewJWTMaker("test-secret", time.Hour)

	authService := services.NewAuthService(nil, maker, password.NewHasher(4))
	journalService := services.NewJournalService(nil, nil, logger)
	summaryService := services.NewSummaryService(nil, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, maker, authService, journalService, summaryService)

	token, err := maker.GenerateToken("user-1")
	require.NoError(t, err)

	return router, token
}

// Методы обновления принимаются как PUT: пустое тело доходит до обработчика
// и отклоняется бизнес-логикой, а не роутером со статусом 405.
func TestRoutes_UpdateEndpointsAcceptPut(t *testing.T) {
	router, token := newTestRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{name: "обновление профиля", url: "/updateProfile"},
		{name: "обновление записи дневника", url: "/updateJournal/entry-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.url, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"No fields to update"`)
		})
	}
}

func TestRoutes_ProtectedRoutesRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/updateProfile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
}
