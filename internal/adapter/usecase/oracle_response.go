package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("(?m)^```(?:json)?\\n?")
	fenceClose = regexp.MustCompile("(?m)\\n?```$")

	errNoScore    = errors.New("oracle response has no score")
	errBidOutOfRange = errors.New("oracle recommended bid out of range")
)

// maxRecommendedBid is the largest bid accepted from the oracle. Anything
// above it cannot be represented exactly as integer credits.
const maxRecommendedBid = 1 << 53

// oracleVerdict is the JSON object the oracle is asked to return. Pointer
// fields distinguish absent values from zeros.
type oracleVerdict struct {
	Score          *float64 `json:"score"`
	RecommendedBid *float64 `json:"recommendedBid"`
	Confidence     *float64 `json:"confidence"`
	Reason         string   `json:"reason"`
	PredictedROI   *float64 `json:"predictedROI"`
}

// parseVerdict extracts the verdict from free text: code fences are
// stripped and the whole text decoded, falling back to the first balanced
// JSON object found in the raw response. A verdict without a score, or
// with a negative or oversized recommended bid, is treated as unparseable.
func parseVerdict(text string) (oracleVerdict, error) {
	var v oracleVerdict
	stripped := strings.TrimSpace(fenceClose.ReplaceAllString(fenceOpen.ReplaceAllString(text, ""), ""))
	if err := json.Unmarshal([]byte(stripped), &v); err != nil {
		obj, ok := extractJSONObject(text)
		if !ok {
			return oracleVerdict{}, fmt.Errorf("no JSON object in oracle response: %w", err)
		}
		v = oracleVerdict{}
		if err = json.Unmarshal([]byte(obj), &v); err != nil {
			return oracleVerdict{}, fmt.Errorf("decode oracle JSON: %w", err)
		}
	}
	if v.Score == nil {
		return oracleVerdict{}, errNoScore
	}
	if b := v.RecommendedBid; b != nil && (*b < 0 || *b > maxRecommendedBid) {
		return oracleVerdict{}, fmt.Errorf("%w: %g", errBidOutOfRange, *b)
	}
	return v, nil
}

// extractJSONObject returns the first brace-balanced object in text.
// Braces inside JSON strings are ignored.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
