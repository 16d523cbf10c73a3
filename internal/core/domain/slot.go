package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Slot is a purchasable time window of a store's advertising inventory.
// Slots are read-only for the engine; analytics refreshes them elsewhere.
type Slot struct {
	ID             uuid.UUID `json:"id"`
	StoreID        string    `json:"storeId"`
	StoreName      string    `json:"storeName"`
	Category       string    `json:"category"`
	DayOfWeek      int       `json:"dayOfWeek"` // 0 = Sunday
	StartTime      string    `json:"startTime"` // HH:MM
	EndTime        string    `json:"endTime"`   // HH:MM
	DurationHours  int       `json:"durationHours"`
	CreditsPerHour int64     `json:"creditsPerHour"`
	AverageTraffic int64     `json:"averageTraffic"`
	IsPrimeTime    bool      `json:"isPrimeTime"`
	IsActive       bool      `json:"isActive"`
}

// TimeSlotLabel renders the slot window as "start-end".
func (s Slot) TimeSlotLabel() string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName returns the English name of a 0-6 day-of-week index.
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "Unknown"
	}
	return dayNames[day]
}
