// Package guestpasses реализует HTTP-обработчик состояния гостевых пропусков.
package guestpasses

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubhouse/club-billing/internal/http/response"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/models"
)

// Handler управляет HTTP-запросами на чтение состояния гостевых пропусков.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пропусков
}

// Service описывает интерфейс бизнес-логики состояния гостевых пропусков.
type Service interface {
	GetGuestPassStatus(ctx context.Context, email string, date time.Time) (*models.GuestPassStatus, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Состояние гостевых пропусков
// @Description Возвращает количество использованных и оставшихся гостевых пропусков члена клуба за текущий месяц.
// @Tags GuestPasses
// @Produce  json
// @Param email path string true "Email члена клуба"
// @Success 200 {object} map[string]any "Состояние пропусков"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /guestpasses/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.guestpasses"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	status, err := h.service.GetGuestPassStatus(r.Context(), email, time.Now())
	if err != nil {
		log.Error("failed to get guest pass status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get guest pass status"))
		return
	}

	log.Info("guest pass status read",
		slog.String("email", email),
		slog.Int("passes_used", status.PassesUsed))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": status,
	}))
}
