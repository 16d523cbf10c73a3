package usecase

import (
	"encoding/json"
	"fmt"

	"ad-exchange/internal/core/domain"
)

// similarHistoryLimit bounds how many past records are shown to the oracle.
const similarHistoryLimit = 5

type slotContext struct {
	Store        string `json:"store"`
	DayOfWeek    string `json:"dayOfWeek"`
	Time         string `json:"time"`
	Traffic      int64  `json:"traffic"`
	IsPrimeTime  bool   `json:"isPrimeTime"`
	CurrentPrice int64  `json:"currentPrice"`
}

type campaignContext struct {
	Goal     string `json:"goal"`
	Budget   int64  `json:"budget"`
	Strategy string `json:"strategy"`
}

// similarHistory returns the newest records sharing the slot's store or
// day-of-week, oldest first.
func similarHistory(history []domain.PerformanceRecord, s domain.Slot) []domain.PerformanceRecord {
	out := make([]domain.PerformanceRecord, 0, similarHistoryLimit)
	for i := len(history) - 1; i >= 0 && len(out) < similarHistoryLimit; i-- {
		if history[i].StoreID == s.StoreID || history[i].DayOfWeek == s.DayOfWeek {
			out = append(out, history[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func buildScoringPrompt(s domain.Slot, c *domain.Campaign, history []domain.PerformanceRecord) (string, error) {
	store := s.StoreName
	if store == "" {
		store = "Unknown Store"
	}
	slotJSON, err := json.MarshalIndent(slotContext{
		Store:        store,
		DayOfWeek:    domain.DayName(s.DayOfWeek),
		Time:         s.TimeSlotLabel(),
		Traffic:      s.AverageTraffic,
		IsPrimeTime:  s.IsPrimeTime,
		CurrentPrice: s.CreditsPerHour,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	campaignJSON, err := json.MarshalIndent(campaignContext{
		Goal:     c.OptimizationGoal,
		Budget:   c.CreditsRemaining,
		Strategy: c.Strategy,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	historyJSON, err := json.MarshalIndent(similarHistory(history, s), "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an ad bidding optimizer for a storefront slot marketplace.

SLOT TO EVALUATE:
%s

CAMPAIGN CONTEXT:
%s

HISTORICAL PERFORMANCE (similar slots):
%s

Evaluate this slot and provide:
1. Score (0-100): how good is this slot for the campaign?
2. Recommended bid (credits): how much to bid?
3. Confidence (0-1): how confident are you?
4. Reason: why this score and bid?
5. Predicted ROI: expected return on investment in percent.

Consider store traffic against price, time slot alignment with the campaign
goal, historical performance, competition and the remaining budget.

Return ONLY JSON:
{
  "score": <0-100>,
  "recommendedBid": <credits>,
  "confidence": <0-1>,
  "reason": "<brief explanation>",
  "predictedROI": <number>
}`, slotJSON, campaignJSON, historyJSON), nil
}
