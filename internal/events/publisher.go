// Package events публикует события биллинга в RabbitMQ для подсистемы
// уведомлений: фиксация расчёта сессии и перерасчёт существующей сессии.
package events

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/clubhouse/club-billing/internal/lib/rabbitmq"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/models"
)

// Ключи маршрутизации событий биллинга.
const (
	RouteCommitted    = "committed"
	RouteRecalculated = "recalculated"
)

// Publisher отправляет события биллинга в обменник club.billing.
// Ошибка публикации логируется и не прерывает расчёт: событие носит
// уведомительный характер, источником истины остаётся журнал в базе.
type Publisher struct {
	ch  *amqp.Channel
	log *slog.Logger
}

// New создает Publisher поверх открытого канала RabbitMQ.
func New(ch *amqp.Channel, log *slog.Logger) *Publisher {
	return &Publisher{ch: ch, log: log}
}

// PublishBilled отправляет событие о рассчитанной сессии.
func (p *Publisher) PublishBilled(routingKey string, sessionID int, hostEmail string, date time.Time, res *models.SessionBillingResult) {
	event := models.BillingEvent{
		EventID:         uuid.New().String(),
		SessionID:       sessionID,
		HostEmail:       hostEmail,
		Date:            date.Format("2006-01-02"),
		TotalFees:       res.TotalFees,
		GuestPassesUsed: res.GuestPassesUsed,
	}

	if err := rabbitmq.PublishMessage(p.ch, rabbitmq.BillingExchange, routingKey, event); err != nil {
		p.log.Warn("failed to publish billing event",
			slog.String("routing_key", routingKey),
			slog.Int("session_id", sessionID),
			sl.Err(err))
		return
	}
	p.log.Info("billing event published",
		slog.String("routing_key", routingKey),
		slog.String("event_id", event.EventID))
}
