package domain

// ScoredSlot is a candidate slot annotated by the scorer.
type ScoredSlot struct {
	Slot
	Score          float64 // 0-100
	RecommendedBid int64   // credits
	Confidence     float64 // 0-1
	Reason         string
	PredictedROI   float64
	Source         ScoreSource
}
