package services

import (
	"context"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/dto"
)

// AccountSvcFacade manages the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, tenantID, accountID, actorID string) error
}
