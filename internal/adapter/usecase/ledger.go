package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// CampaignLedger owns a campaign's budget state and status lifecycle. It is
// the only place credits move for bidding.
type CampaignLedger struct {
	campaigns port.CampaignRepository
	logger    *slog.Logger
}

// NewCampaignLedger returns a ledger backed by the campaign repository.
func NewCampaignLedger(campaigns port.CampaignRepository, logger *slog.Logger) *CampaignLedger {
	return &CampaignLedger{campaigns: campaigns, logger: logger}
}

// CheckEligible reports whether the campaign may bid. A campaign without
// remaining credits is persisted as completed so later runs skip it early;
// the returned reason explains a false result.
func (l *CampaignLedger) CheckEligible(ctx context.Context, c *domain.Campaign) (bool, string, error) {
	if c.Status != domain.CampaignActive {
		return false, "Campaign not active", nil
	}
	if c.Exhausted() {
		if err := l.campaigns.SetStatus(ctx, c.ID, domain.CampaignCompleted); err != nil {
			return false, "", fmt.Errorf("complete exhausted campaign: %w", err)
		}
		c.Status = domain.CampaignCompleted
		l.logger.InfoContext(ctx, "campaign completed, no credits remaining",
			slog.String("campaign_id", c.ID.String()))
		return false, "No credits remaining", nil
	}
	return true, "", nil
}

// Debit moves amount credits from remaining to spent and persists the run's
// bids in the same unit of work. The in-memory campaign is only updated
// once the repository accepted the change.
func (l *CampaignLedger) Debit(ctx context.Context, c *domain.Campaign, runID uuid.UUID, amount int64, bids []domain.Bid) error {
	next := *c
	if err := next.Debit(amount); err != nil {
		return err
	}
	err := l.campaigns.CommitRun(ctx, port.LedgerDebit{
		RunID:      runID,
		CampaignID: c.ID,
		Amount:     amount,
		Before:     ledgerState(c),
		After:      ledgerState(&next),
		Bids:       bids,
	})
	if err != nil {
		return err
	}
	c.CreditsRemaining = next.CreditsRemaining
	c.CreditsSpent = next.CreditsSpent
	c.Status = next.Status
	return nil
}

func ledgerState(c *domain.Campaign) port.LedgerState {
	return port.LedgerState{
		CreditsRemaining: c.CreditsRemaining,
		CreditsSpent:     c.CreditsSpent,
		Status:           c.Status,
	}
}
