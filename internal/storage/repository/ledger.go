package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clubhouse/club-billing/internal/models"
)

// GetDailyUsage возвращает сумму минут члена клуба за дату.
// Если excludeSessionID > 0, вклад этой сессии не учитывается:
// так перерасчёт сессии не считает её собственные прежние минуты дважды.
func (s *Storage) GetDailyUsage(ctx context.Context, email string, date time.Time, excludeSessionID int) (int, error) {
	const op = "storage.GetDailyUsage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(minutes), 0)
			  FROM usage_ledger
			  WHERE member_email = $1 AND usage_date = $2
			    AND ($3 = 0 OR session_id <> $3)`
	var minutes int
	err := s.DB.QueryRowContext(ctx, query, email, date, excludeSessionID).Scan(&minutes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return minutes, nil
}

// ReplaceSessionEntries атомарно заменяет записи журнала, закреплённые
// за сессией: удаляет прежние строки и вставляет новые в одной транзакции.
// Повторный вызов с теми же входными данными даёт те же итоги журнала.
// Advisory-блокировка по идентификатору сессии сериализует параллельные
// перерасчёты одной и той же сессии.
func (s *Storage) ReplaceSessionEntries(ctx context.Context, sessionID int, date time.Time, entries []models.LedgerWrite) error {
	const op = "storage.ReplaceSessionEntries"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(sessionID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM usage_ledger WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	insertQuery := `INSERT INTO usage_ledger (member_email, usage_date, session_id, minutes)
			  VALUES ($1, $2, $3, $4)`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, insertQuery, e.Email, date, sessionID, e.Minutes); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
