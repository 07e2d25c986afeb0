package billing

import "github.com/clubhouse/club-billing/internal/models"

const (
	// OverageRatePer30Min — стоимость одного 30-минутного блока переработки, долларов.
	OverageRatePer30Min = 25
	// FlatGuestFee — фиксированный гостевой сбор, долларов.
	FlatGuestFee = 25
	// overageBlockMinutes — длина тарифицируемого блока переработки.
	overageBlockMinutes = 30
)

// OverageResult — итог расчёта переработки дневного лимита одним участником.
type OverageResult struct {
	RemainingBefore int // Остаток лимита до этой сессии
	OverageMinutes  int // Минуты сверх лимита в этой сессии
	OverageFee      int // Плата за переработку, долларов
}

// Overage рассчитывает переработку дневного лимита участником-членом клуба.
// usedToday — минуты, потраченные ранее в тот же день (без учёта пересчитываемой
// сессии), allocated — минуты, отнесённые на участника в этой сессии.
// Для безлимитного тарифа переработки нет, а остаток лимита отдаётся
// сентинельным значением для отображения. Неполный блок округляется вверх.
func Overage(limits models.TierLimits, usedToday, allocated int) OverageResult {
	if limits.Unlimited {
		return OverageResult{RemainingBefore: models.UnlimitedSentinel}
	}

	remaining := limits.DailyAllowanceMinutes - usedToday
	if remaining < 0 {
		remaining = 0
	}

	overage := allocated - remaining
	if overage < 0 {
		overage = 0
	}

	blocks := (overage + overageBlockMinutes - 1) / overageBlockMinutes
	return OverageResult{
		RemainingBefore: remaining,
		OverageMinutes:  overage,
		OverageFee:      blocks * OverageRatePer30Min,
	}
}
