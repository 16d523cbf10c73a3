package usecase

import "ad-exchange/internal/core/domain"

const (
	heuristicConfidence = 0.5 // oracle unavailable for the whole run
	fallbackConfidence  = 0.3 // oracle attempted and failed for the slot
)

// HeuristicScore is the deterministic slot score used when the oracle
// cannot be consulted. The result is clamped to [0,100].
func HeuristicScore(s domain.Slot, c *domain.Campaign) float64 {
	score := 50.0

	switch {
	case s.AverageTraffic > 1000:
		score += 20
	case s.AverageTraffic > 500:
		score += 10
	case s.AverageTraffic < 100:
		score -= 10
	}

	if c.MaxPricePerSlot != nil && s.CreditsPerHour > *c.MaxPricePerSlot {
		score -= 30
	}

	if s.IsPrimeTime {
		if c.Targeting.AvoidPrimeTime {
			score -= 20
		} else {
			score += 15
		}
	}

	if c.Targeting.PrefersDay(s.DayOfWeek) {
		score += 10
	}

	return clamp(score, 0, 100)
}

func heuristicSlot(s domain.Slot, c *domain.Campaign, confidence float64, reason string, source domain.ScoreSource) domain.ScoredSlot {
	return domain.ScoredSlot{
		Slot:           s,
		Score:          HeuristicScore(s, c),
		RecommendedBid: s.CreditsPerHour,
		Confidence:     confidence,
		Reason:         reason,
		Source:         source,
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
