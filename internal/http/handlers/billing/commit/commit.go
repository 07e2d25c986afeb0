// Package commit реализует HTTP-обработчик фиксации расчёта сессии.
//
// В отличие от предварительного расчёта, фиксация записывает минуты
// участников в журнал использования и списывает гостевые пропуски.
package commit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/clubhouse/club-billing/internal/http/response"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/models"
)

// Handler управляет HTTP-запросами на фиксацию расчёта сессии.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики фиксации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики фиксации расчёта.
type Service interface {
	CommitSessionBilling(ctx context.Context, sessionID int, date time.Time, durationMinutes int,
		participants []models.Participant, hostEmail string) (*models.SessionBillingResult, error)
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
// @Summary Фиксация расчёта сессии
// @Description Рассчитывает стоимость сессии, записывает минуты в журнал и списывает гостевые пропуски. Повторная фиксация той же сессии заменяет прежние записи.
// @Tags Billing
// @Accept  json
// @Produce  json
// @Param request body models.DummyCommitRequest true "Параметры сессии"
// @Success 200 {object} map[string]any "Результат расчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при фиксации"
// @Router /billing/commit [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.billing.commit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		log.Error("failed to parse date", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid date"))
		return
	}

	result, err := h.service.CommitSessionBilling(r.Context(), req.SessionID, date, req.DurationMinutes,
		models.ToParticipants(req.Participants), req.HostEmail)
	if err != nil {
		log.Error("failed to commit session billing", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not commit session billing"))
		return
	}

	log.Info("session billing committed",
		slog.Int("session_id", req.SessionID),
		slog.Int("total_fees", result.TotalFees))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"result": result,
	}))
}
