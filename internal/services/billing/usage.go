package services

import (
	"context"
	"time"

	"github.com/clubhouse/club-billing/internal/lib/month"
	"github.com/clubhouse/club-billing/internal/models"
)

// GetDailyUsageSummary возвращает сводку дневного использования члена клуба:
// потраченные минуты, лимит тарифа и остаток. Читается экраном регистрации.
func (s *BillingService) GetDailyUsageSummary(ctx context.Context, email string, date time.Time) (*models.DailyUsageSummary, error) {
	limits, unresolved, err := s.resolveMemberLimits(ctx, email)
	if err != nil {
		return nil, err
	}

	used, err := s.ledger.GetDailyUsage(ctx, email, month.DayStart(date), 0)
	if err != nil {
		return nil, err
	}

	summary := &models.DailyUsageSummary{
		Email:          email,
		Date:           date.Format("2006-01-02"),
		TierName:       limits.Name,
		MinutesUsed:    used,
		DailyAllowance: limits.DailyAllowanceMinutes,
		Unlimited:      limits.Unlimited,
		TierUnresolved: unresolved,
	}

	if limits.Unlimited {
		summary.RemainingMinutes = models.UnlimitedSentinel
		return summary, nil
	}

	remaining := limits.DailyAllowanceMinutes - used
	if remaining < 0 {
		remaining = 0
	}
	summary.RemainingMinutes = remaining
	return summary, nil
}

// GetGuestPassStatus возвращает состояние гостевых пропусков члена клуба
// за месяц, в который попадает дата.
func (s *BillingService) GetGuestPassStatus(ctx context.Context, email string, date time.Time) (*models.GuestPassStatus, error) {
	limits, unresolved, err := s.resolveMemberLimits(ctx, email)
	if err != nil {
		return nil, err
	}

	status := &models.GuestPassStatus{
		Email:           email,
		Month:           month.Key(date),
		TierName:        limits.Name,
		HasBenefit:      limits.HasGuestPassBenefit && !unresolved,
		UnlimitedPasses: limits.UnlimitedPasses,
	}
	if !status.HasBenefit {
		return status, nil
	}

	record, err := s.passes.GetGuestPassRecord(ctx, email, status.Month, limits.GuestPassesPerMonth)
	if err != nil {
		return nil, err
	}

	status.PassesUsed = record.PassesUsed
	status.PassesTotal = record.PassesTotal
	if limits.UnlimitedPasses {
		status.PassesRemaining = models.UnlimitedSentinel
		return status, nil
	}

	remaining := record.PassesTotal - record.PassesUsed
	if remaining < 0 {
		remaining = 0
	}
	status.PassesRemaining = remaining
	return status, nil
}
