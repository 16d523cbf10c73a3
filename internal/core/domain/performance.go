package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistoryCapacity bounds the per-campaign performance history.
const HistoryCapacity = 100

// PerformanceRecord is the observed outcome of one rental.
type PerformanceRecord struct {
	SlotID       uuid.UUID `json:"slotId"`
	StoreID      string    `json:"storeId"`
	DayOfWeek    int       `json:"dayOfWeek"`
	TimeSlot     string    `json:"timeSlot"`
	BidAmount    int64     `json:"bidAmount"`
	PredictedROI float64   `json:"predictedROI"`
	ActualROI    float64   `json:"actualROI"`
	Traffic      int64     `json:"traffic"`
	Conversions  int64     `json:"conversions"`
	Timestamp    time.Time `json:"timestamp"`
}

// History is an append-only FIFO of performance records holding at most
// HistoryCapacity entries, oldest first. The zero value is empty and ready
// to use.
type History struct {
	records []PerformanceRecord
}

// NewHistory builds a history from records ordered oldest first, keeping
// only the newest HistoryCapacity of them.
func NewHistory(records []PerformanceRecord) History {
	var h History
	for _, r := range records {
		h.Append(r)
	}
	return h
}

// Append adds r as the newest record, evicting the oldest beyond capacity.
func (h *History) Append(r PerformanceRecord) {
	h.records = append(h.records, r)
	if over := len(h.records) - HistoryCapacity; over > 0 {
		h.records = append(h.records[:0:0], h.records[over:]...)
	}
}

// Len returns the number of records held.
func (h History) Len() int {
	return len(h.records)
}

// Records returns a copy of the records, oldest first.
func (h History) Records() []PerformanceRecord {
	out := make([]PerformanceRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Recent returns up to n of the newest records, oldest first.
func (h History) Recent(n int) []PerformanceRecord {
	if n >= len(h.records) {
		return h.Records()
	}
	out := make([]PerformanceRecord, n)
	copy(out, h.records[len(h.records)-n:])
	return out
}

func (h History) MarshalJSON() ([]byte, error) {
	if h.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.records)
}

func (h *History) UnmarshalJSON(data []byte) error {
	var records []PerformanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	*h = NewHistory(records)
	return nil
}
