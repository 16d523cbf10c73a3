package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignDebit(t *testing.T) {
	c := Campaign{TotalCredits: 1000, CreditsRemaining: 1000, Status: CampaignActive}

	require.NoError(t, c.Debit(400))
	assert.Equal(t, int64(600), c.CreditsRemaining)
	assert.Equal(t, int64(400), c.CreditsSpent)
	assert.Equal(t, CampaignActive, c.Status)
	assert.Equal(t, c.TotalCredits, c.CreditsRemaining+c.CreditsSpent)

	require.NoError(t, c.Debit(600))
	assert.Zero(t, c.CreditsRemaining)
	assert.Equal(t, CampaignCompleted, c.Status)
	assert.True(t, c.Exhausted())
}

func TestCampaignDebitRejected(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
	}{
		{name: "negative", amount: -1},
		{name: "over remaining", amount: 501},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{TotalCredits: 1000, CreditsRemaining: 500, CreditsSpent: 500, Status: CampaignActive}

			err := c.Debit(tt.amount)

			require.ErrorIs(t, err, ErrInvariantViolation)
			assert.Equal(t, int64(500), c.CreditsRemaining)
			assert.Equal(t, int64(500), c.CreditsSpent)
			assert.Equal(t, CampaignActive, c.Status)
		})
	}
}

func TestCampaignDebitZero(t *testing.T) {
	c := Campaign{TotalCredits: 100, CreditsRemaining: 100, Status: CampaignActive}
	require.NoError(t, c.Debit(0))
	assert.Equal(t, int64(100), c.CreditsRemaining)
}
