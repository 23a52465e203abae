package repositories

import (
	"context"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// PeriodRepositoryFacade persists accounting periods and answers the
// period-lock lookup used by the validation gate.
type PeriodRepositoryFacade interface {
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error
	FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context, tenantID string) ([]domain.AccountingPeriod, error)
	// IsDateClosed reports whether the date falls inside a CLOSED period.
	IsDateClosed(ctx context.Context, tenantID string, date time.Time) (bool, error)
	ClosePeriod(ctx context.Context, tenantID, periodID string, updatedBy string, updatedAt time.Time) error
}
