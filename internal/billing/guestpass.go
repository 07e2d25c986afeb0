package billing

import "github.com/clubhouse/club-billing/internal/models"

// GuestCharge — решение по одному гостю: пропуск или фиксированный сбор.
type GuestCharge struct {
	PassUsed bool // Гостевой пропуск использован
	Fee      int  // Гостевой сбор, долларов
}

// GuestCharges начисляет сборы гостям сессии в порядке их следования в списке.
// Пока у хоста есть право на пропуска и остаток passesRemaining положителен,
// очередной гость получает пропуск и нулевой сбор; остальные платят
// фиксированный сбор. Использование пропуска не влияет на плату хоста
// за переработку собственного лимита.
func GuestCharges(host models.TierLimits, passesRemaining, guestCount int) []GuestCharge {
	charges := make([]GuestCharge, guestCount)
	for i := range charges {
		if host.HasGuestPassBenefit && (host.UnlimitedPasses || passesRemaining > 0) {
			charges[i] = GuestCharge{PassUsed: true}
			if !host.UnlimitedPasses {
				passesRemaining--
			}
			continue
		}
		charges[i] = GuestCharge{Fee: FlatGuestFee}
	}
	return charges
}
