// Package recalculate реализует HTTP-обработчик пересчёта стоимости сессии.
//
// Handler извлекает идентификатор сессии из URL, загружает сохранённую
// сессию и заменяет её записи в журнале использования результатом нового
// расчёта. Гостевые пропуски при пересчёте повторно не списываются.
package recalculate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/clubhouse/club-billing/internal/http/response"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/models"
	"github.com/clubhouse/club-billing/internal/storage/repository"
)

// Handler управляет HTTP-запросами на пересчёт стоимости сессии.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пересчёта
}

// Service описывает интерфейс бизнес-логики пересчёта стоимости сессии.
type Service interface {
	RecalculateSessionFees(ctx context.Context, sessionID int) (*models.RecalcResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пересчитать стоимость сессии
// @Description Загружает сохранённую сессию и заменяет её записи в журнале использования результатом нового расчёта.
// @Tags Sessions
// @Produce  json
// @Param id path int true "ID сессии"
// @Success 200 {object} map[string]any "Результат пересчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Сессия не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при пересчёте"
// @Router /sessions/{id}/recalculate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.recalculate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	result, err := h.service.RecalculateSessionFees(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			log.Warn("session not found", slog.Int("session_id", sessionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("session not found"))
			return
		}
		log.Error("failed to recalculate session fees", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not recalculate session fees"))
		return
	}

	log.Info("session fees recalculated",
		slog.Int("session_id", sessionID),
		slog.Int("participants_updated", result.ParticipantsUpdated))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"result": result,
	}))
}
