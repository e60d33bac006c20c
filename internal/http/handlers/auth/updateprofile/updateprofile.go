// Package updateprofile реализует HTTP-обработчик частичного обновления профиля.
//
// Пользователь может поменять имя и/или пароль; запрос без полей отклоняется.
// Идентификатор пользователя берётся из контекста, положенного JWT middleware,
// а не из тела запроса.
package updateprofile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/journal-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/journal-service/internal/http/response"
	"github.com/magabrotheeeer/journal-service/internal/lib/sl"
	"github.com/magabrotheeeer/journal-service/internal/services"
	"github.com/magabrotheeeer/journal-service/internal/storage/repository"
)

// Request — входные данные обновления профиля, оба поля опциональны.
type Request struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateProfile(ctx context.Context, userUID string, username, password *string) error
}

// Handler обрабатывает HTTP-запросы обновления профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.updateprofile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	if err := h.service.UpdateProfile(r.Context(), userUID, req.Username, req.Password); err != nil {
		var uniqueErr *repository.UniqueViolationError
		switch {
		case errors.Is(err, services.ErrNoFieldsToUpdate):
			log.Error("no fields to update")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No fields to update"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
		case errors.As(err, &uniqueErr):
			log.Error("duplicate username", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(uniqueErr.Error()))
		default:
			log.Error("failed to update profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Something went wrong, try again later"))
		}
		return
	}

	log.Info("profile updated", slog.String("uid", userUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Profile updated successfully",
	}))
}
