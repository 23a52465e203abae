package services

import (
	"context"
	"fmt"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService computes signed account balances. It reads the ledger store
// directly on every call; correctness over latency, there is no cache.
type balanceService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewBalanceService creates the balance calculator.
func NewBalanceService(accountRepo portsrepo.AccountRepositoryFacade, reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// BalanceAsOf sums all lines on entries posted up to and including asOf and
// applies the account type's sign convention.
func (s *balanceService) BalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load account %s: %w", accountID, err)
	}

	totals, err := s.reportingRepo.SumAccountAsOf(ctx, tenantID, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum lines for account %s: %w", accountID, err)
	}

	return accounting.SignedBalance(account.AccountType, totals.Debits, totals.Credits), nil
}

// BalancesForRange is the batched variant used by reports. Every requested
// account appears in the result; accounts with no activity carry a zero balance.
func (s *balanceService) BalancesForRange(ctx context.Context, tenantID string, accountIDs []string, from, to time.Time) (map[string]decimal.Decimal, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accounts[id]; !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrUnknownAccount, id)
		}
	}

	totals, err := s.reportingRepo.SumAccountsForRange(ctx, tenantID, accountIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum lines for range: %w", err)
	}

	balances := make(map[string]decimal.Decimal, len(accountIDs))
	for _, id := range accountIDs {
		t := totals[id] // zero totals when absent
		balances[id] = accounting.SignedBalance(accounts[id].AccountType, t.Debits, t.Credits)
	}
	return balances, nil
}
