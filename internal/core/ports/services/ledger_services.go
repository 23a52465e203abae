package services

import (
	"context"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// PostingSvcFacade is the posting engine: it turns a source document into a
// posted journal entry, exactly once per source document.
type PostingSvcFacade interface {
	Post(ctx context.Context, tenantID, actorID string, req dto.PostingRequest) (*dto.PostingResult, error)
}

// ReversalSvcFacade is the reversal engine: it produces the exact mirror of a
// previously posted entry without ever deleting history.
type ReversalSvcFacade interface {
	Reverse(ctx context.Context, tenantID, actorID string, req dto.ReversalRequest) (*dto.ReversalResult, error)
}

// LedgerSvcFacade reads posted entries and their lines.
type LedgerSvcFacade interface {
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// BalanceSvcFacade computes signed account balances from whatever the ledger
// store currently persists.
type BalanceSvcFacade interface {
	BalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error)
	BalancesForRange(ctx context.Context, tenantID string, accountIDs []string, from, to time.Time) (map[string]decimal.Decimal, error)
}

// ValidationSvcFacade runs the pre-posting checks. An empty violation slice
// means the candidate lines may be posted.
type ValidationSvcFacade interface {
	Validate(ctx context.Context, tenantID string, postingDate time.Time, lines []domain.JournalLine) ([]domain.Violation, error)
}
