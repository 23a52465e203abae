package services

import (
	"context"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/dto"
)

// PeriodSvcFacade manages accounting periods and the period lock.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, tenantID string, req dto.CreatePeriodRequest, creatorID string) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context, tenantID string) ([]domain.AccountingPeriod, error)
	ClosePeriod(ctx context.Context, tenantID, periodID, actorID string) error
	IsDateClosed(ctx context.Context, tenantID string, date time.Time) (bool, error)
}
