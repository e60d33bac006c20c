// Package read реализует HTTP-обработчик для получения конкретной записи по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения записи
// и возвращает данные записи в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/http/response"
	"github.com/magabrotheeeer/journal-service/internal/lib/sl"
	"github.com/magabrotheeeer/journal-service/internal/models"
	"github.com/magabrotheeeer/journal-service/internal/storage/repository"
)

// Handler обрабатывает запросы на получение записи по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, id, userUID string) (*models.JournalEntry, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Read(r.Context(), id, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("journal entry not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Journal not found"))
			return
		}
		log.Error("failed to read journal entry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read journal entry"))
		return
	}

	log.Info("journal entry read", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"journal": res,
	}))
}
