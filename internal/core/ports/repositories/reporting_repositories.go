package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AccountTotals holds the raw debit and credit sums for one account over some
// date range; sign conventions are applied by the balance service.
type AccountTotals struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// ReportingRepositoryFacade is the read side of the ledger used by the balance
// calculator. It always reads whatever the ledger store currently persists;
// there is no caching layer.
type ReportingRepositoryFacade interface {
	// SumAccountAsOf sums all lines on entries with posting date <= asOf.
	SumAccountAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (AccountTotals, error)
	// SumAccountsForRange is the batched variant used by reports; accounts with
	// no activity in the range are present with zero totals.
	SumAccountsForRange(ctx context.Context, tenantID string, accountIDs []string, from, to time.Time) (map[string]AccountTotals, error)
}
