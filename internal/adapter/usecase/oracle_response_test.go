package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore float64
		wantBid   *float64
	}{
		{
			name:      "plain json",
			text:      `{"score": 72, "recommendedBid": 130, "confidence": 0.8, "reason": "busy"}`,
			wantScore: 72,
			wantBid:   ptr(130.0),
		},
		{
			name:      "fenced json",
			text:      "```json\n{\"score\": 64.5, \"confidence\": 0.6}\n```",
			wantScore: 64.5,
		},
		{
			name:      "object inside prose",
			text:      "Here is my evaluation: {\"score\": 81, \"reason\": \"weekend {peak}\"} Hope it helps.",
			wantScore: 81,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVerdict(tt.text)
			require.NoError(t, err)
			require.NotNil(t, v.Score)
			assert.Equal(t, tt.wantScore, *v.Score)
			assert.Equal(t, tt.wantBid, v.RecommendedBid)
		})
	}
}

func TestParseVerdictFailures(t *testing.T) {
	_, err := parseVerdict("I cannot evaluate this slot.")
	require.Error(t, err)

	_, err = parseVerdict(`{"confidence": 0.9, "reason": "no score given"}`)
	require.ErrorIs(t, err, errNoScore)

	_, err = parseVerdict(`{"score": `)
	require.Error(t, err)

	_, err = parseVerdict(`{"score": 90, "recommendedBid": 1e30, "confidence": 0.9}`)
	require.ErrorIs(t, err, errBidOutOfRange)

	_, err = parseVerdict(`{"score": 90, "recommendedBid": -40}`)
	require.ErrorIs(t, err, errBidOutOfRange)
}

func TestExtractJSONObject(t *testing.T) {
	obj, ok := extractJSONObject(`noise {"a": {"b": "}"}} tail {"c": 1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": "}"}}`, obj)

	_, ok = extractJSONObject("no braces")
	assert.False(t, ok)
}
