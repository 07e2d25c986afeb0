// Package services содержит бизнес-логику перерасчёта стоимости
// существующих сессий после изменения длительности или состава участников.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clubhouse/club-billing/internal/models"
)

// SessionRepository определяет чтение сессий из хранилища.
type SessionRepository interface {
	// GetSession возвращает сессию с участниками; ErrSessionNotFound, если её нет.
	GetSession(ctx context.Context, sessionID int) (*models.Session, error)
}

// Repricer выполняет перерасчёт стоимости сессии и замену записей журнала.
type Repricer interface {
	Reprice(ctx context.Context, session *models.Session) (*models.SessionBillingResult, error)
}

// RecalcService реализует перерасчёт стоимости сессии по её идентификатору.
type RecalcService struct {
	sessions SessionRepository
	billing  Repricer
	log      *slog.Logger
}

// NewRecalcService создает новый экземпляр RecalcService.
func NewRecalcService(sessions SessionRepository, billing Repricer, log *slog.Logger) *RecalcService {
	return &RecalcService{
		sessions: sessions,
		billing:  billing,
		log:      log,
	}
}

// RecalculateSessionFees загружает сессию, пересчитывает её стоимость
// и атомарно заменяет записи журнала использования. Несуществующая сессия —
// фатальная ошибка вызова: журнал не изменяется, вызывающая сторона
// повторяет запрос вручную.
func (s *RecalcService) RecalculateSessionFees(ctx context.Context, sessionID int) (*models.RecalcResult, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %d: %w", sessionID, err)
	}

	result, err := s.billing.Reprice(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("reprice session %d: %w", sessionID, err)
	}

	s.log.Info("session fees recalculated",
		slog.Int("session_id", sessionID),
		slog.Int("participants_updated", result.ParticipantCount))

	return &models.RecalcResult{
		SessionID:           sessionID,
		LedgerUpdated:       true,
		ParticipantsUpdated: result.ParticipantCount,
	}, nil
}
