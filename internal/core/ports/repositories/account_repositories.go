package repositories

import (
	"context"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for the chart of accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	// FindAccountsByIDs returns the accounts found keyed by ID; missing IDs are
	// simply absent from the map.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, tenantID, accountID string, updatedBy string) error
}
