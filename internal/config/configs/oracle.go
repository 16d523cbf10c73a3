package configs

import "time"

// Oracle configures the scoring oracle, an OpenAI compatible chat
// completions endpoint. Without an API key the oracle reports itself
// unavailable and every run is scored heuristically.
type Oracle struct {
	URL    string `env:"URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gpt-4o-mini"`
	// Timeout bounds a single scoring call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// BreakerThreshold is the number of consecutive failures that open the
	// circuit; BreakerCooldown is how long it then stays open.
	BreakerThreshold int           `env:"BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown  time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}
