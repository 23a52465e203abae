package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
)

// accountService manages the chart of accounts. Accounts are never deleted
// once referenced by a journal line; deactivation is the only retirement path.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewAccountService creates the chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds a node to the tenant's chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s", apperrors.ErrUnknownAccount, req.ParentAccountID)
			}
			return nil, fmt.Errorf("failed to load parent account: %w", err)
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: parent account %s has type %s, child has %s", apperrors.ErrValidation, parent.AccountID, parent.AccountType, req.AccountType)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: req.ParentAccountID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.auditSvc.Record(ctx, domain.AuditEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID,
		ActorID:    creatorID,
		EntityType: "account",
		EntityID:   account.AccountID,
		Action:     domain.ActionAccountCreated,
		Metadata:   map[string]string{"code": account.Code},
		CreatedAt:  now,
	})

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves one account scoped to the tenant.
func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
}

// GetAccountsByIDs retrieves accounts keyed by ID; missing IDs are absent.
func (s *accountService) GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
}

// ListAccounts retrieves a page of the tenant's accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.accountRepo.ListAccounts(ctx, tenantID, limit, offset)
}

// DeactivateAccount retires an account from future postings. Existing lines
// keep referencing it.
func (s *accountService) DeactivateAccount(ctx context.Context, tenantID, accountID, actorID string) error {
	return s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, actorID)
}
