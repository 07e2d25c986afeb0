package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetMemberTier возвращает название текущего тарифа члена клуба по почте.
// Неизвестная почта — ("", nil), не ошибка.
func (s *Storage) GetMemberTier(ctx context.Context, email string) (string, error) {
	const op = "storage.GetMemberTier"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT tier_name FROM members WHERE email = $1`
	var tierName string
	err := s.DB.QueryRowContext(ctx, query, email).Scan(&tierName)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return tierName, nil
}
