package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateMinutes(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
		want  []int
	}{
		{
			name:  "один участник получает всё время",
			total: 90,
			count: 1,
			want:  []int{90},
		},
		{
			name:  "деление без остатка",
			total: 90,
			count: 3,
			want:  []int{30, 30, 30},
		},
		{
			name:  "остаток достаётся первым по списку",
			total: 100,
			count: 3,
			want:  []int{34, 33, 33},
		},
		{
			name:  "участников больше, чем минут",
			total: 2,
			count: 4,
			want:  []int{1, 1, 0, 0},
		},
		{
			name:  "нулевая длительность",
			total: 0,
			count: 3,
			want:  []int{0, 0, 0},
		},
		{
			name:  "ноль участников",
			total: 60,
			count: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateMinutes(tt.total, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocateMinutes_SumInvariant(t *testing.T) {
	// Сумма распределённых минут всегда равна длительности сессии.
	for total := 0; total <= 240; total += 7 {
		for count := 1; count <= 6; count++ {
			got := AllocateMinutes(total, count)
			require.Len(t, got, count)

			sum := 0
			for _, m := range got {
				sum += m
			}
			require.Equal(t, total, sum, "total=%d count=%d", total, count)
		}
	}
}
