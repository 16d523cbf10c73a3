package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
)

func scored(store string, score, confidence float64, bid int64) domain.ScoredSlot {
	return domain.ScoredSlot{
		Slot:           slotFixture(store, 500, bid),
		Score:          score,
		RecommendedBid: bid,
		Confidence:     confidence,
	}
}

func fixedRoll(v float64) Roller {
	return func() (float64, error) { return v, nil }
}

func TestSelectRespectsBudgetAndMinScore(t *testing.T) {
	candidates := []domain.ScoredSlot{
		scored("a", 90, 1, 200),
		scored("b", 80, 1, 100),
		scored("c", 70, 1, 60),
		scored("d", 45, 1, 10),
	}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 270, nil, "smart")

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].StoreID)
	assert.Equal(t, "c", got[1].StoreID)

	var total int64
	for _, s := range got {
		total += s.RecommendedBid
	}
	assert.LessOrEqual(t, total, int64(270))
}

func TestSelectRanksByRiskAdjustedScore(t *testing.T) {
	candidates := []domain.ScoredSlot{
		scored("shaky", 80, 0.25, 100),
		scored("solid", 60, 1, 100),
	}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 100, nil, "smart")

	require.Len(t, got, 1)
	assert.Equal(t, "solid", got[0].StoreID)
}

func TestSelectStopsAtDailyBudget(t *testing.T) {
	candidates := []domain.ScoredSlot{
		scored("a", 90, 1, 60),
		scored("b", 85, 1, 50),
		scored("c", 80, 1, 10),
	}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 1000, ptr(int64(100)), "aggressive")

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].StoreID)

	unlimited := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 1000, ptr(int64(0)), "aggressive")
	assert.Len(t, unlimited, 3)
}

func TestSelectEnforcesStoreDiversity(t *testing.T) {
	candidates := []domain.ScoredSlot{
		scored("a", 90, 1, 10),
		scored("a", 85, 1, 10),
		scored("a", 80, 1, 10),
		scored("b", 70, 1, 10),
	}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 1000, nil, "smart")

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "a", "b"}, []string{got[0].StoreID, got[1].StoreID, got[2].StoreID})
	assert.Equal(t, 85.0, got[1].Score)
}

func TestSelectPrimeTimeRoll(t *testing.T) {
	prime := scored("p", 90, 1, 10)
	prime.IsPrimeTime = true
	candidates := []domain.ScoredSlot{prime}

	assert.Empty(t, NewSelector(fixedRoll(0.65), discardLogger()).Select(context.Background(), candidates, 100, nil, "smart"))
	assert.Len(t, NewSelector(fixedRoll(0.65), discardLogger()).Select(context.Background(), candidates, 100, nil, "aggressive"), 1)

	failing := func() (float64, error) { return 0, errors.New("entropy exhausted") }
	assert.Empty(t, NewSelector(failing, discardLogger()).Select(context.Background(), candidates, 100, nil, "aggressive"))
}

func TestSelectUnknownStrategyUsesSmart(t *testing.T) {
	candidates := []domain.ScoredSlot{scored("a", 49, 1, 10), scored("b", 51, 1, 10)}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 100, nil, "mystery")

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].StoreID)
}

func TestSelectSkipsNegativeBid(t *testing.T) {
	candidates := []domain.ScoredSlot{scored("broken", 99, 1, -10), scored("ok", 70, 1, 50)}

	got := NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 100, nil, "smart")

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].StoreID)
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	candidates := []domain.ScoredSlot{scored("low", 60, 1, 10), scored("high", 90, 1, 10)}

	NewSelector(fixedRoll(0), discardLogger()).Select(context.Background(), candidates, 100, nil, "smart")

	assert.Equal(t, "low", candidates[0].StoreID)
}

func TestCryptoRollerRange(t *testing.T) {
	for range 100 {
		v, err := CryptoRoller()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
