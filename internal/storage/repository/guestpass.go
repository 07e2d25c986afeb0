package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubhouse/club-billing/internal/models"
)

// GetGuestPassRecord возвращает счётчик гостевых пропусков члена клуба
// за месяц. Если записи ещё нет, возвращает нулевой счётчик с месячным
// лимитом passesTotal, не создавая строку.
func (s *Storage) GetGuestPassRecord(ctx context.Context, email, month string, passesTotal int) (*models.GuestPassRecord, error) {
	const op = "storage.GetGuestPassRecord"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT member_email, month, passes_used, passes_total
			  FROM guest_passes WHERE member_email = $1 AND month = $2`
	var record models.GuestPassRecord
	err := s.DB.QueryRowContext(ctx, query, email, month).Scan(
		&record.MemberEmail, &record.Month, &record.PassesUsed, &record.PassesTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.GuestPassRecord{
			MemberEmail: email,
			Month:       month,
			PassesUsed:  0,
			PassesTotal: passesTotal,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &record, nil
}

// ConsumeGuestPass атомарно списывает один гостевой пропуск за месяц.
// Условный UPDATE не даёт счётчику превысить месячный лимит при
// параллельных бронированиях; false означает "пропуска нет" и не
// является ошибкой — вызывающая сторона начисляет фиксированный сбор.
func (s *Storage) ConsumeGuestPass(ctx context.Context, email, month string, passesTotal int, unlimited bool) (bool, error) {
	const op = "storage.ConsumeGuestPass"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	upsert := `INSERT INTO guest_passes (member_email, month, passes_used, passes_total)
			  VALUES ($1, $2, 0, $3)
			  ON CONFLICT (member_email, month) DO NOTHING`
	if _, err := s.DB.ExecContext(ctx, upsert, email, month, passesTotal); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	update := `UPDATE guest_passes
			  SET passes_used = passes_used + 1
			  WHERE member_email = $1 AND month = $2
			    AND ($3 OR passes_used < passes_total)`
	result, err := s.DB.ExecContext(ctx, update, email, month, unlimited)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}
