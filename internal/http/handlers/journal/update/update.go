// Package update реализует HTTP-обработчик частичного обновления записи дневника.
//
// Поля запроса опциональны: обновляются только переданные. Запись ищется
// по ID из URL и владельцу из контекста, чужие записи недоступны.
package update

import (
	"context"
	"encoding/json"
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
	"github.com/magabrotheeeer/journal-service/internal/services"
	"github.com/magabrotheeeer/journal-service/internal/storage/repository"
)

// Handler обрабатывает запросы на обновление записи дневника.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления записи.
type Service interface {
	Update(ctx context.Context, id, userUID string, req models.DummyUpdateEntry) (*models.JournalEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить запись дневника
// @Description Частично обновляет запись текущего пользователя, меняются только переданные поля.
// @Tags Journal
// @Accept  json
// @Produce  json
// @Param id path string true "ID записи"
// @Param request body models.DummyUpdateEntry true "Поля для обновления"
// @Success 200 {object} map[string]any "Обновлённая запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или поля"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /updateJournal/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyUpdateEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	entry, err := h.service.Update(r.Context(), id, userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFieldsToUpdate):
			log.Error("no fields to update")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No fields to update"))
		case errors.Is(err, services.ErrInvalidCategory):
			log.Error("invalid category", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(services.ErrInvalidCategory.Error()))
		case errors.Is(err, services.ErrInvalidDateFormat):
			log.Error("invalid date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date format"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("journal entry not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Journal not found"))
		default:
			log.Error("failed to update journal entry", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update journal entry"))
		}
		return
	}

	log.Info("journal entry updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"journalEntry": entry,
	}))
}
