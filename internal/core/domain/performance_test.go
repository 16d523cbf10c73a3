package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEvictsOldest(t *testing.T) {
	var h History
	for i := range HistoryCapacity + 1 {
		h.Append(PerformanceRecord{BidAmount: int64(i)})
	}

	records := h.Records()
	require.Len(t, records, HistoryCapacity)
	assert.Equal(t, int64(1), records[0].BidAmount)
	assert.Equal(t, int64(HistoryCapacity), records[len(records)-1].BidAmount)
}

func TestHistoryRecent(t *testing.T) {
	h := NewHistory([]PerformanceRecord{{BidAmount: 1}, {BidAmount: 2}, {BidAmount: 3}})

	recent := h.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].BidAmount)
	assert.Equal(t, int64(3), recent[1].BidAmount)
	assert.Len(t, h.Recent(10), 3)
}

func TestHistoryRecordsIsCopy(t *testing.T) {
	h := NewHistory([]PerformanceRecord{{BidAmount: 1}})
	h.Records()[0].BidAmount = 99
	assert.Equal(t, int64(1), h.Records()[0].BidAmount)
}

func TestHistoryJSON(t *testing.T) {
	var empty History
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	records := make([]PerformanceRecord, HistoryCapacity+5)
	for i := range records {
		records[i].BidAmount = int64(i)
	}
	data, err = json.Marshal(records)
	require.NoError(t, err)

	var h History
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Equal(t, HistoryCapacity, h.Len())
	assert.Equal(t, int64(5), h.Records()[0].BidAmount)
}
