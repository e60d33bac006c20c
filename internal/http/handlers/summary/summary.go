// Package summary реализует HTTP-обработчик агрегированной сводки записей.
//
// Период и границы диапазона передаются query-параметрами. Записи группируются
// по дневным, недельным или месячным корзинам и возвращаются отсортированными
// по ключу корзины.
package summary

import (
	"context"
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

// Handler обрабатывает запросы сводки по записям дневника.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики агрегирования записей.
type Service interface {
	Summarize(ctx context.Context, userUID string, filter models.DummySummaryFilter) ([]models.SummaryBucket, error)
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
// @Summary Сводка записей по периодам
// @Description Группирует записи пользователя в диапазоне дат по дням, неделям или месяцам.
// @Tags Journal
// @Produce  json
// @Param period query string true "Период группировки: daily, weekly, monthly"
// @Param startDate query string true "Начало диапазона, YYYY-MM-DD"
// @Param endDate query string true "Конец диапазона, YYYY-MM-DD"
// @Success 200 {object} map[string]any "Сгруппированная сводка"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при построении сводки"
// @Router /journalSummary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.summary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.DummySummaryFilter{
		Period:    r.URL.Query().Get("period"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	if err := h.validate.Struct(filter); err != nil {
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

	buckets, err := h.service.Summarize(r.Context(), userUID, filter)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPeriod):
			log.Error("invalid period", slog.String("period", filter.Period))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid period specified"))
		case errors.Is(err, services.ErrInvalidDateFormat):
			log.Error("invalid date range", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date format"))
		default:
			log.Error("failed to build summary", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not build summary"))
		}
		return
	}

	log.Info("summary built",
		slog.String("period", filter.Period), slog.Int("buckets", len(buckets)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"period":   filter.Period,
		"journals": buckets,
	}))
}
