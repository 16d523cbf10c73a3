package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ad-exchange/internal/core/domain"
)

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name     string
		slot     domain.Slot
		campaign domain.Campaign
		want     float64
	}{
		{
			name: "baseline",
			slot: domain.Slot{AverageTraffic: 300, CreditsPerHour: 50},
			want: 50,
		},
		{
			name: "busy prime time on preferred day",
			slot: domain.Slot{AverageTraffic: 1200, IsPrimeTime: true, DayOfWeek: 5},
			campaign: domain.Campaign{
				Targeting: domain.Targeting{PreferredDays: []int{5}},
			},
			want: 95,
		},
		{
			name: "medium traffic",
			slot: domain.Slot{AverageTraffic: 600},
			want: 60,
		},
		{
			name: "zero traffic is penalised",
			slot: domain.Slot{AverageTraffic: 0},
			want: 40,
		},
		{
			name: "everything wrong clamps to zero",
			slot: domain.Slot{AverageTraffic: 50, IsPrimeTime: true, CreditsPerHour: 500},
			campaign: domain.Campaign{
				MaxPricePerSlot: ptr(int64(100)),
				Targeting:       domain.Targeting{AvoidPrimeTime: true},
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeuristicScore(tt.slot, &tt.campaign)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, HeuristicScore(tt.slot, &tt.campaign))
		})
	}
}
