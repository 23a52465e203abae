package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates the read-side repository for balance sums.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// SumAccountAsOf sums the account's debit and credit lines across all entries
// with posting date on or before asOf. Reversed originals stay in the sums;
// their mirror entries cancel them arithmetically.
func (r *PgxReportingRepository) SumAccountAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (portsrepo.AccountTotals, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.tenant_id = $1 AND l.account_id = $2 AND e.posting_date <= $3;
	`
	var totals portsrepo.AccountTotals
	err := r.pool.QueryRow(ctx, query, tenantID, accountID, asOf).Scan(&totals.Debits, &totals.Credits)
	if err != nil {
		return portsrepo.AccountTotals{}, fmt.Errorf("failed to sum lines for account %s: %w", accountID, err)
	}
	return totals, nil
}

// SumAccountsForRange sums debit and credit lines per account over a posting
// date range. Accounts with no activity in the range come back with zero totals.
func (r *PgxReportingRepository) SumAccountsForRange(ctx context.Context, tenantID string, accountIDs []string, from, to time.Time) (map[string]portsrepo.AccountTotals, error) {
	results := make(map[string]portsrepo.AccountTotals, len(accountIDs))
	for _, id := range accountIDs {
		results[id] = portsrepo.AccountTotals{Debits: decimal.Zero, Credits: decimal.Zero}
	}
	if len(accountIDs) == 0 {
		return results, nil
	}

	query := `
		SELECT l.account_id, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.tenant_id = $1 AND l.account_id = ANY($2) AND e.posting_date >= $3 AND e.posting_date <= $4
		GROUP BY l.account_id;
	`
	rows, err := r.pool.Query(ctx, query, tenantID, accountIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum lines for account range: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var accountID string
		var totals portsrepo.AccountTotals
		if err := rows.Scan(&accountID, &totals.Debits, &totals.Credits); err != nil {
			return nil, fmt.Errorf("failed to scan account totals row: %w", err)
		}
		results[accountID] = totals
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}

	return results, nil
}
