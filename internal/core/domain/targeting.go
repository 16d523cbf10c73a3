package domain

import "slices"

// Targeting describes which slots a campaign is willing to bid on.
type Targeting struct {
	TargetStores     []string `json:"targetStores,omitempty"`
	TargetCategories []string `json:"targetCategories,omitempty"`
	ExcludeStores    []string `json:"excludeStores,omitempty"`
	MinTraffic       *int64   `json:"minTraffic,omitempty"`
	PreferredDays    []int    `json:"preferredDays,omitempty"`
	PreferredHours   []string `json:"preferredHours,omitempty"`
	AvoidPrimeTime   bool     `json:"avoidPrimeTime"`
}

// Matches reports whether the slot is eligible inventory for this
// targeting. Empty sets and a nil MinTraffic impose no constraint.
// Categories and preferred hours are scoring inputs only and never
// exclude a slot.
func (t Targeting) Matches(s Slot) bool {
	if !s.IsActive {
		return false
	}
	if len(t.TargetStores) > 0 && !slices.Contains(t.TargetStores, s.StoreID) {
		return false
	}
	if len(t.ExcludeStores) > 0 && slices.Contains(t.ExcludeStores, s.StoreID) {
		return false
	}
	if t.MinTraffic != nil && s.AverageTraffic < *t.MinTraffic {
		return false
	}
	if len(t.PreferredDays) > 0 && !slices.Contains(t.PreferredDays, s.DayOfWeek) {
		return false
	}
	return true
}

// PrefersDay reports whether day is one of the preferred days.
func (t Targeting) PrefersDay(day int) bool {
	return slices.Contains(t.PreferredDays, day)
}
