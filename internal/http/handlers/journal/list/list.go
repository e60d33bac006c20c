// Package list реализует HTTP-обработчик для получения всех записей пользователя.
package list

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

// Handler обрабатывает запросы списка записей дневника.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка записей.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.JournalEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list journal entries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list journal entries"))
		return
	}

	if len(res) == 0 {
		log.Info("no journal entries found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("No journals found"))
		return
	}

	log.Info("list journal entries", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(res),
		"journals": res,
	}))
}
