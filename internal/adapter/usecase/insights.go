package usecase

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
)

const (
	trendWindow   = 10
	trendBand     = 0.1
	highROIMark   = 50
	lowROIMark    = 10
	bestSlotLimit = 5
)

// Trend labels returned by ROITrend.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// MeanROI returns the average actual ROI, or 0 for an empty history.
func MeanROI(history []domain.PerformanceRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, r := range history {
		sum += r.ActualROI
	}
	return sum / float64(len(history))
}

// ROITrend compares the mean ROI of the newest records with the mean of the
// whole history. A difference of more than 10% of the overall mean counts
// as a trend.
func ROITrend(history []domain.PerformanceRecord) string {
	if len(history) == 0 {
		return TrendStable
	}
	overall := MeanROI(history)
	recent := MeanROI(history[max(0, len(history)-trendWindow):])
	band := trendBand * math.Abs(overall)
	switch {
	case recent > overall+band:
		return TrendImproving
	case recent < overall-band:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// BestPerformingSlots returns up to limit slots ranked by mean actual ROI.
func BestPerformingSlots(history []domain.PerformanceRecord, limit int) []domain.SlotROI {
	type acc struct {
		total float64
		count int
	}
	bySlot := make(map[uuid.UUID]*acc)
	for _, r := range history {
		a, ok := bySlot[r.SlotID]
		if !ok {
			a = &acc{}
			bySlot[r.SlotID] = a
		}
		a.total += r.ActualROI
		a.count++
	}

	out := make([]domain.SlotROI, 0, len(bySlot))
	for id, a := range bySlot {
		out = append(out, domain.SlotROI{SlotID: id, AvgROI: a.total / float64(a.count), Count: a.count})
	}
	slices.SortFunc(out, func(a, b domain.SlotROI) int {
		if c := cmp.Compare(b.AvgROI, a.AvgROI); c != 0 {
			return c
		}
		return bytes.Compare(a.SlotID[:], b.SlotID[:])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GenerateInsights derives human readable findings from the history. The
// output depends only on the records, never on map iteration order.
func GenerateInsights(history []domain.PerformanceRecord) []string {
	if len(history) == 0 {
		return []string{"Not enough data yet to generate insights"}
	}
	insights := make([]string, 0, 5)

	if day, ok := bestDay(history); ok {
		insights = append(insights, "Best performing day: "+domain.DayName(day))
	}
	if label, ok := bestTimeSlot(history); ok {
		insights = append(insights, "Optimal time: "+label)
	}

	insights = append(insights, fmt.Sprintf("Average conversion rate: %.2f%%", ConversionRate(history)))

	switch ROITrend(history) {
	case TrendImproving:
		insights = append(insights, "Performance improving over time")
	case TrendDeclining:
		insights = append(insights, "Performance declining - consider adjusting strategy")
	default:
		insights = append(insights, "Performance stable")
	}

	switch avg := MeanROI(history); {
	case avg > highROIMark:
		insights = append(insights, "High ROI - consider increasing budget")
	case avg < lowROIMark:
		insights = append(insights, "Low ROI - review targeting or reduce bids")
	}
	return insights
}

// ConversionRate is mean conversions over mean traffic, in percent.
func ConversionRate(history []domain.PerformanceRecord) float64 {
	var traffic, conversions int64
	for _, r := range history {
		traffic += r.Traffic
		conversions += r.Conversions
	}
	if traffic == 0 {
		return 0
	}
	return float64(conversions) / float64(traffic) * 100
}

func bestDay(history []domain.PerformanceRecord) (int, bool) {
	means := groupMeanROI(history, func(r domain.PerformanceRecord) int { return r.DayOfWeek })
	return bestKey(means)
}

func bestTimeSlot(history []domain.PerformanceRecord) (string, bool) {
	means := groupMeanROI(history, func(r domain.PerformanceRecord) string { return r.TimeSlot })
	return bestKey(means)
}

func groupMeanROI[K cmp.Ordered](history []domain.PerformanceRecord, key func(domain.PerformanceRecord) K) map[K]float64 {
	totals := make(map[K]float64)
	counts := make(map[K]int)
	for _, r := range history {
		k := key(r)
		totals[k] += r.ActualROI
		counts[k]++
	}
	means := make(map[K]float64, len(totals))
	for k, total := range totals {
		means[k] = total / float64(counts[k])
	}
	return means
}

// bestKey returns the key with the highest value; ties go to the smallest key.
func bestKey[K cmp.Ordered](values map[K]float64) (K, bool) {
	var best K
	if len(values) == 0 {
		return best, false
	}
	keys := make([]K, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	best = keys[0]
	for _, k := range keys[1:] {
		if values[k] > values[best] {
			best = k
		}
	}
	return best, true
}
