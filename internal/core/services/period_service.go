package services

import (
	"context"
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

// periodService manages accounting periods. Closing a period is what arms the
// validation gate's closed-period check.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

// NewPeriodService creates the accounting period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo: periodRepo,
		auditSvc:   auditSvc,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod opens a new accounting period for the tenant.
func (s *periodService) CreatePeriod(ctx context.Context, tenantID string, req dto.CreatePeriodRequest, creatorID string) (*domain.AccountingPeriod, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: period end date is before its start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		TenantID:  tenantID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to save period: %w", err)
	}
	return &period, nil
}

// ListPeriods retrieves all of the tenant's periods.
func (s *periodService) ListPeriods(ctx context.Context, tenantID string) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriods(ctx, tenantID)
}

// ClosePeriod locks a period against further postings and records the closure
// in the audit log.
func (s *periodService) ClosePeriod(ctx context.Context, tenantID, periodID, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	if err := s.periodRepo.ClosePeriod(ctx, tenantID, periodID, actorID, now); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.AuditEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID,
		ActorID:    actorID,
		EntityType: "accounting_period",
		EntityID:   periodID,
		Action:     domain.ActionPeriodClosed,
		CreatedAt:  now,
	})

	logger.Info("Accounting period closed", slog.String("period_id", periodID))
	return nil
}

// IsDateClosed answers the period-lock lookup used by the validation gate.
func (s *periodService) IsDateClosed(ctx context.Context, tenantID string, date time.Time) (bool, error) {
	return s.periodRepo.IsDateClosed(ctx, tenantID, date)
}
