package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bidding tunes the bidding, auction and learning engine.
type Bidding struct {
	// ScoringBudget bounds the total oracle time of one bidding run. Slots
	// left unscored when it runs out use the heuristic fallback.
	ScoringBudget time.Duration `env:"SCORING_BUDGET" envDefault:"2m"`
	// RevenuePerConversion is the euro value of one conversion used for ROI.
	RevenuePerConversion decimal.Decimal `env:"REVENUE_PER_CONVERSION" envDefault:"10"`
	// SweepConcurrency is how many campaigns the sweep command bids for at once.
	SweepConcurrency int `env:"SWEEP_CONCURRENCY" envDefault:"4"`
}
