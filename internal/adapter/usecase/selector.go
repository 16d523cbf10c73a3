package usecase

import (
	"cmp"
	"context"
	"crypto/rand"
	"log/slog"
	"math"
	"math/big"
	"slices"

	"ad-exchange/internal/core/domain"
)

// Roller draws a uniform value in [0,1).
type Roller func() (float64, error)

var rollSpace = big.NewInt(1 << 53)

// CryptoRoller draws from crypto/rand so prime-time admission cannot be
// predicted by competing bidders.
func CryptoRoller() (float64, error) {
	n, err := rand.Int(rand.Reader, rollSpace)
	if err != nil {
		return 0, err
	}
	return float64(n.Int64()) / (1 << 53), nil
}

// Selector turns scored slots into a budget-bounded set of bids according
// to a named strategy.
type Selector struct {
	roll   Roller
	logger *slog.Logger
}

// NewSelector returns a selector using roll for prime-time admission. A
// nil roll uses CryptoRoller.
func NewSelector(roll Roller, logger *slog.Logger) *Selector {
	if roll == nil {
		roll = CryptoRoller
	}
	return &Selector{roll: roll, logger: logger}
}

// Select walks the candidates once, best risk-adjusted score first, and
// accepts every slot that fits the remaining budget, meets the strategy's
// minimum score, keeps store diversity and passes the prime-time roll.
// Selection stops as soon as the accepted total reaches dailyBudget.
// The input slice is not modified.
func (s *Selector) Select(ctx context.Context, scored []domain.ScoredSlot, remainingBudget int64, dailyBudget *int64, strategyName string) []domain.ScoredSlot {
	strategy := domain.LookupStrategy(strategyName)

	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b domain.ScoredSlot) int {
		return cmp.Compare(riskAdjusted(b, strategy), riskAdjusted(a, strategy))
	})

	var (
		selected  []domain.ScoredSlot
		remaining = remainingBudget
		allocated int64
		stores    = make(map[string]struct{})
	)
	for _, cand := range ranked {
		if cand.RecommendedBid < 0 || cand.RecommendedBid > remaining {
			continue
		}
		if cand.Score < strategy.MinScore {
			continue
		}
		if len(selected) > 0 {
			_, used := stores[cand.StoreID]
			diversity := float64(len(stores)) / float64(len(selected))
			if used && diversity < strategy.Diversification {
				continue
			}
		}
		if cand.IsPrimeTime {
			roll, err := s.roll()
			if err != nil {
				s.logger.WarnContext(ctx, "prime-time roll failed, skipping slot",
					slog.String("slot_id", cand.ID.String()), slog.Any("error", err))
				continue
			}
			if roll > strategy.PrimeTimePreference {
				continue
			}
		}

		selected = append(selected, cand)
		remaining -= cand.RecommendedBid
		allocated += cand.RecommendedBid
		stores[cand.StoreID] = struct{}{}

		if dailyBudget != nil && *dailyBudget > 0 && allocated >= *dailyBudget {
			break
		}
	}
	return selected
}

func riskAdjusted(s domain.ScoredSlot, strategy domain.Strategy) float64 {
	return s.Score * math.Pow(s.Confidence, strategy.RiskTolerance)
}
