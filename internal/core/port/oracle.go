package port

import (
	"context"
	"errors"
)

// ErrOracleUnavailable is returned when the scoring oracle cannot be used.
var ErrOracleUnavailable = errors.New("scoring oracle unavailable")

// ScoringOracle is an external, failure-prone reasoning service that scores
// a slot for a campaign. Responses are free text that usually contains a
// JSON object; no schema is enforced.
type ScoringOracle interface {
	// Available reports whether the oracle can be used for a run. A non-nil
	// error makes the whole run fall back to heuristic scoring.
	Available(ctx context.Context) error
	// Evaluate sends the prompt and returns the raw response text.
	Evaluate(ctx context.Context, prompt string) (string, error)
}
