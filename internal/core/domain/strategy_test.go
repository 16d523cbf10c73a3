package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupStrategy(t *testing.T) {
	assert.Equal(t, 0.3, LookupStrategy("aggressive").Diversification)
	assert.Equal(t, 40.0, LookupStrategy("conservative").MinScore)
	assert.Equal(t, 0.5, LookupStrategy("custom").PrimeTimePreference)

	unknown := LookupStrategy("yolo")
	assert.Equal(t, "smart", unknown.Name)
	assert.Equal(t, 50.0, unknown.MinScore)
}
