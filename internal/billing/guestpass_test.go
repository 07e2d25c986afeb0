package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubhouse/club-billing/internal/models"
)

func TestGuestCharges(t *testing.T) {
	withBenefit := models.TierLimits{Name: "premium", HasGuestPassBenefit: true, GuestPassesPerMonth: 8}
	withoutBenefit := models.TierLimits{Name: "core"}
	unlimitedPasses := models.TierLimits{Name: "executive", HasGuestPassBenefit: true, UnlimitedPasses: true}

	tests := []struct {
		name            string
		host            models.TierLimits
		passesRemaining int
		guestCount      int
		want            []GuestCharge
	}{
		{
			name:            "пропуск доступен — сбор не взимается",
			host:            withBenefit,
			passesRemaining: 8,
			guestCount:      1,
			want:            []GuestCharge{{PassUsed: true}},
		},
		{
			name:            "тариф без права на пропуска",
			host:            withoutBenefit,
			passesRemaining: 0,
			guestCount:      2,
			want:            []GuestCharge{{Fee: 25}, {Fee: 25}},
		},
		{
			name:            "пропуска закончились",
			host:            withBenefit,
			passesRemaining: 0,
			guestCount:      1,
			want:            []GuestCharge{{Fee: 25}},
		},
		{
			name:            "пропусков меньше, чем гостей — расходуются по порядку списка",
			host:            withBenefit,
			passesRemaining: 2,
			guestCount:      3,
			want:            []GuestCharge{{PassUsed: true}, {PassUsed: true}, {Fee: 25}},
		},
		{
			name:            "безлимитные пропуска покрывают всех гостей",
			host:            unlimitedPasses,
			passesRemaining: 0,
			guestCount:      3,
			want:            []GuestCharge{{PassUsed: true}, {PassUsed: true}, {PassUsed: true}},
		},
		{
			name:            "сессия без гостей",
			host:            withBenefit,
			passesRemaining: 8,
			guestCount:      0,
			want:            []GuestCharge{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuestCharges(tt.host, tt.passesRemaining, tt.guestCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuestCharges_FeeAndPassExclusive(t *testing.T) {
	// Нулевой сбор тогда и только тогда, когда использован пропуск.
	host := models.TierLimits{Name: "premium", HasGuestPassBenefit: true, GuestPassesPerMonth: 8}
	for remaining := 0; remaining <= 5; remaining++ {
		for guests := 0; guests <= 5; guests++ {
			for _, c := range GuestCharges(host, remaining, guests) {
				if c.PassUsed {
					assert.Zero(t, c.Fee)
				} else {
					assert.Equal(t, FlatGuestFee, c.Fee)
				}
			}
		}
	}
}
