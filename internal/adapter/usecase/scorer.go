package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// Scorer rates candidate slots for a campaign. The oracle is consulted one
// slot at a time; any slot it cannot score falls back to HeuristicScore.
type Scorer struct {
	oracle      port.ScoringOracle
	logger      *slog.Logger
	callTimeout time.Duration
	runBudget   time.Duration
	now         func() time.Time
}

// NewScorer returns a scorer. oracle may be nil, in which case every slot
// is scored heuristically. callTimeout bounds a single oracle call and
// runBudget bounds the oracle time of a whole run; zero disables either.
func NewScorer(oracle port.ScoringOracle, logger *slog.Logger, callTimeout, runBudget time.Duration) *Scorer {
	return &Scorer{
		oracle:      oracle,
		logger:      logger,
		callTimeout: callTimeout,
		runBudget:   runBudget,
		now:         time.Now,
	}
}

// Score returns one scored entry per slot, ordered by descending score.
// Entries with equal score keep their input order.
func (s *Scorer) Score(ctx context.Context, slots []domain.Slot, c *domain.Campaign, history []domain.PerformanceRecord) []domain.ScoredSlot {
	scored := make([]domain.ScoredSlot, 0, len(slots))

	if err := s.oracleAvailable(ctx); err != nil {
		s.logger.WarnContext(ctx, "oracle unavailable, using heuristic scoring",
			slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
		for _, slot := range slots {
			scored = append(scored, heuristicSlot(slot, c, heuristicConfidence,
				"Heuristic scoring (AI unavailable)", domain.SourceHeuristic))
		}
		sortByScore(scored)
		return scored
	}

	var deadline time.Time
	if s.runBudget > 0 {
		deadline = s.now().Add(s.runBudget)
	}

	for _, slot := range slots {
		if !deadline.IsZero() && !s.now().Before(deadline) {
			scored = append(scored, heuristicSlot(slot, c, fallbackConfidence,
				"Heuristic fallback (scoring budget exhausted)", domain.SourceFallback))
			continue
		}
		entry, err := s.scoreWithOracle(ctx, slot, c, history, deadline)
		if err != nil {
			s.logger.WarnContext(ctx, "oracle scoring failed, using heuristic fallback",
				slog.String("slot_id", slot.ID.String()), slog.Any("error", err))
			entry = heuristicSlot(slot, c, fallbackConfidence, "Heuristic fallback", domain.SourceFallback)
		} else {
			s.logger.DebugContext(ctx, "slot scored",
				slog.String("slot_id", slot.ID.String()), slog.Float64("score", entry.Score))
		}
		scored = append(scored, entry)
	}

	sortByScore(scored)
	return scored
}

func (s *Scorer) oracleAvailable(ctx context.Context) error {
	if s.oracle == nil {
		return port.ErrOracleUnavailable
	}
	return s.oracle.Available(ctx)
}

func (s *Scorer) scoreWithOracle(ctx context.Context, slot domain.Slot, c *domain.Campaign, history []domain.PerformanceRecord, deadline time.Time) (domain.ScoredSlot, error) {
	prompt, err := buildScoringPrompt(slot, c, history)
	if err != nil {
		return domain.ScoredSlot{}, err
	}

	callCtx := ctx
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.callTimeout)
		defer cancel()
	}
	if !deadline.IsZero() {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithDeadline(callCtx, deadline)
		defer cancel()
	}

	text, err := s.oracle.Evaluate(callCtx, prompt)
	if err != nil {
		return domain.ScoredSlot{}, err
	}
	v, err := parseVerdict(text)
	if err != nil {
		return domain.ScoredSlot{}, err
	}
	return verdictSlot(slot, v), nil
}

func verdictSlot(slot domain.Slot, v oracleVerdict) domain.ScoredSlot {
	entry := domain.ScoredSlot{
		Slot:           slot,
		Score:          clamp(*v.Score, 0, 100),
		RecommendedBid: slot.CreditsPerHour,
		Confidence:     0.5,
		Reason:         v.Reason,
		Source:         domain.SourceOracle,
	}
	if v.RecommendedBid != nil && *v.RecommendedBid >= 1 {
		entry.RecommendedBid = int64(math.Round(*v.RecommendedBid))
	}
	if v.Confidence != nil {
		entry.Confidence = clamp(*v.Confidence, 0, 1)
	}
	if entry.Reason == "" {
		entry.Reason = "AI evaluation"
	}
	if v.PredictedROI != nil {
		entry.PredictedROI = *v.PredictedROI
	}
	return entry
}

func sortByScore(scored []domain.ScoredSlot) {
	slices.SortStableFunc(scored, func(a, b domain.ScoredSlot) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
