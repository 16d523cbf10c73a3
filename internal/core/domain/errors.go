package domain

import "errors"

var (
	// ErrInvariantViolation is returned for operations that would break a
	// ledger invariant, e.g. a debit beyond the remaining credits.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrLedgerConflict is returned when the campaign ledger changed between
	// read and debit.
	ErrLedgerConflict = errors.New("campaign ledger changed concurrently")
	// ErrAuctionResolved is returned when a (slot, date) auction already has a winner.
	ErrAuctionResolved = errors.New("auction already resolved")
	// ErrAlreadyRecorded is returned when a rental's performance was already learned.
	ErrAlreadyRecorded = errors.New("rental performance already recorded")
	// ErrCampaignCompleted is returned when resuming a completed campaign.
	ErrCampaignCompleted = errors.New("campaign is completed")
)
