// Package create реализует HTTP-обработчик для создания новых записей дневника.
//
// Handler принимает JSON-запрос с данными записи, валидирует их, извлекает
// идентификатор пользователя из контекста, вызывает бизнес-логику создания
// и возвращает сохранённую запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/http/response"
	"github.com/magabrotheeeer/journal-service/internal/lib/sl"
	"github.com/magabrotheeeer/journal-service/internal/models"
	"github.com/magabrotheeeer/journal-service/internal/services"
)

// Handler управляет HTTP-запросами на создание новых записей дневника.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyEntry) (*models.JournalEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую запись дневника
// @Description Создает запись для текущего пользователя. Возвращает сохранённую запись.
// @Tags Journal
// @Accept  json
// @Produce  json
// @Param request body models.DummyEntry true "Данные новой записи"
// @Success 201 {object} map[string]any "Успешное создание записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или поля"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /createjournal [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	entry, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			log.Error("invalid category", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(services.ErrInvalidCategory.Error()))
		case errors.Is(err, services.ErrInvalidDateFormat):
			log.Error("invalid date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date format"))
		default:
			log.Error("failed to create journal entry", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create journal entry"))
		}
		return
	}

	log.Info("journal entry created", slog.String("id", entry.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"journalEntry": entry,
	}))
}
