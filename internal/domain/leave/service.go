package leave

import (
	"context"
)

// LeaveService defines business logic for leave tracking
type LeaveService interface {
	// Request records a leave day as a placeholder attendance record
	Request(ctx context.Context, req RequestLeaveRequest) error

	// History returns the leave days taken this year, newest first
	History(ctx context.Context) ([]HistoryEntry, error)

	// Balances returns the reconciled per-kind balances for the session year
	Balances(ctx context.Context) (BalanceSummaryResponse, error)

	// Usage returns the raw usage breakdown for charting
	Usage(ctx context.Context) (UsageBreakdownResponse, error)

	// Quotas returns the allocation row for the session year
	Quotas(ctx context.Context) (QuotasResponse, error)

	// UpdateQuotas writes the allocation row and reloads the snapshot
	UpdateQuotas(ctx context.Context, req UpdateQuotasRequest) (QuotasResponse, error)

	// YearlyReset provisions quotas for the next year and advances the session
	YearlyReset(ctx context.Context) (int, error)
}
