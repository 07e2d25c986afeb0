package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubhouse/club-billing/internal/models"
)

// GetTierLimits возвращает лимиты тарифа по его названию.
// Неизвестный тариф — (nil, nil): вызывающая сторона трактует это
// как "без лимита минут и без права на пропуска", а не как сбой.
func (s *Storage) GetTierLimits(ctx context.Context, tierName string) (*models.TierLimits, error) {
	const op = "storage.GetTierLimits"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, daily_allowance_minutes, guest_passes_per_month,
			      has_guest_pass_benefit, unlimited_access
			  FROM tier_limits WHERE name = $1`
	row := s.DB.QueryRowContext(ctx, query, tierName)

	var (
		limits          models.TierLimits
		unlimitedAccess bool
	)
	err := row.Scan(&limits.Name, &limits.DailyAllowanceMinutes, &limits.GuestPassesPerMonth,
		&limits.HasGuestPassBenefit, &unlimitedAccess)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Числовой сентинель >=999 нормализуется в явные флаги здесь,
	// на границе хранилища; дальше по коду он не проверяется.
	limits.Unlimited = unlimitedAccess || limits.DailyAllowanceMinutes >= models.UnlimitedSentinel
	limits.UnlimitedPasses = limits.GuestPassesPerMonth >= models.UnlimitedSentinel
	return &limits, nil
}

// ListTierLimits возвращает все тарифы, отсортированные по названию.
func (s *Storage) ListTierLimits(ctx context.Context) ([]*models.TierLimits, error) {
	const op = "storage.ListTierLimits"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, daily_allowance_minutes, guest_passes_per_month,
			      has_guest_pass_benefit, unlimited_access
			  FROM tier_limits ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.TierLimits
	for rows.Next() {
		var (
			limits          models.TierLimits
			unlimitedAccess bool
		)
		if err := rows.Scan(&limits.Name, &limits.DailyAllowanceMinutes, &limits.GuestPassesPerMonth,
			&limits.HasGuestPassBenefit, &unlimitedAccess); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		limits.Unlimited = unlimitedAccess || limits.DailyAllowanceMinutes >= models.UnlimitedSentinel
		limits.UnlimitedPasses = limits.GuestPassesPerMonth >= models.UnlimitedSentinel
		result = append(result, &limits)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
