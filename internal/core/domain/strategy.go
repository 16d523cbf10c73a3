package domain

// Strategy governs the risk, diversification and prime-time trade-offs of
// bid selection.
type Strategy struct {
	Name string
	// Diversification is the minimum distinct-stores / selected ratio
	// below which an already used store is refused.
	Diversification float64
	// RiskTolerance is the exponent applied to confidence when ranking.
	RiskTolerance float64
	// PrimeTimePreference is the acceptance probability for prime-time slots.
	PrimeTimePreference float64
	MinScore            float64
}

// DefaultStrategy is used for unknown strategy names.
const DefaultStrategy = "smart"

var strategies = map[string]Strategy{
	"smart":        {Name: "smart", Diversification: 0.7, RiskTolerance: 0.5, PrimeTimePreference: 0.6, MinScore: 50},
	"aggressive":   {Name: "aggressive", Diversification: 0.3, RiskTolerance: 0.8, PrimeTimePreference: 0.9, MinScore: 60},
	"conservative": {Name: "conservative", Diversification: 0.9, RiskTolerance: 0.2, PrimeTimePreference: 0.3, MinScore: 40},
	"custom":       {Name: "custom", Diversification: 0.5, RiskTolerance: 0.5, PrimeTimePreference: 0.5, MinScore: 45},
}

// LookupStrategy returns the named preset, falling back to smart.
func LookupStrategy(name string) Strategy {
	if s, ok := strategies[name]; ok {
		return s
	}
	return strategies[DefaultStrategy]
}
