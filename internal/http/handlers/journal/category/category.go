// Package category реализует HTTP-обработчик фильтрации записей по категории.
//
// Категория передаётся query-параметром и сравнивается без учёта регистра.
// Пустой результат отличим от ошибки: возвращается 404 со статусом Error
// и пустым списком в данных.
package category

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/http/response"
	"github.com/magabrotheeeer/journal-service/internal/lib/sl"
	"github.com/magabrotheeeer/journal-service/internal/models"
)

// Handler обрабатывает запросы списка записей по категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики фильтрации по категории.
type Service interface {
	ListByCategory(ctx context.Context, userUID, category string) ([]*models.JournalEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.category"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	category := r.URL.Query().Get("category")
	if category == "" {
		log.Error("missing category parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Category parameter is required for filtering"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.ListByCategory(r.Context(), userUID, category)
	if err != nil {
		log.Error("failed to list journal entries by category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list journal entries"))
		return
	}

	if len(res) == 0 {
		log.Info("no journal entries for category", slog.String("category", category))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Response{
			Status: response.StatusError,
			Error:  "No journals found with category: " + category,
			Data: map[string]any{
				"count":    0,
				"journals": []*models.JournalEntry{},
			},
		})
		return
	}

	log.Info("list journal entries by category",
		slog.String("category", category), slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(res),
		"journals": res,
	}))
}
