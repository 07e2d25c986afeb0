// Package usage реализует HTTP-обработчик сводки дневного использования.
//
// Handler извлекает email из URL и дату из query-параметра date,
// по умолчанию берётся текущий день.
package usage

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

// Handler управляет HTTP-запросами на чтение сводки дневного использования.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики сводки
}

// Service описывает интерфейс бизнес-логики сводки дневного использования.
type Service interface {
	GetDailyUsageSummary(ctx context.Context, email string, date time.Time) (*models.DailyUsageSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка дневного использования
// @Description Возвращает потраченные минуты, дневной лимит тарифа и остаток для члена клуба на указанную дату.
// @Tags Usage
// @Produce  json
// @Param email path string true "Email члена клуба"
// @Param date query string false "Дата в формате 2006-01-02, по умолчанию сегодня"
// @Success 200 {object} map[string]any "Сводка использования"
// @Failure 400 {object} response.ErrorResponse "Некорректная дата"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /usage/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.usage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			log.Error("failed to parse date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date"))
			return
		}
		date = parsed
	}

	summary, err := h.service.GetDailyUsageSummary(r.Context(), email, date)
	if err != nil {
		log.Error("failed to get daily usage summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get daily usage summary"))
		return
	}

	log.Info("daily usage summary read",
		slog.String("email", email),
		slog.Int("minutes_used", summary.MinutesUsed))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"summary": summary,
	}))
}
