package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/atlaserp/ledger_engine/internal/models"
	"github.com/atlaserp/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxPeriodRepository creates a new repository for accounting period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{pool: pool}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a new accounting period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelPeriod(period)

	query := `
		INSERT INTO accounting_periods (period_id, tenant_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PeriodID,
		m.TenantID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: period %s already exists for tenant", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save period %s: %w", m.PeriodID, err)
	}
	return nil
}

const selectPeriodColumns = `
	period_id, tenant_id, name, start_date, end_date, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPeriod(row pgx.Row) (models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.TenantID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPeriodByID retrieves a single period scoped to the tenant.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM accounting_periods WHERE tenant_id = $1 AND period_id = $2;`

	m, err := scanPeriod(r.pool.QueryRow(ctx, query, tenantID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// ListPeriods retrieves all of the tenant's periods ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, tenantID string) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM accounting_periods WHERE tenant_id = $1 ORDER BY start_date;`

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		m, scanErr := scanPeriod(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan period row for tenant %s: %w", tenantID, scanErr)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows for tenant %s: %w", tenantID, err)
	}

	return periods, nil
}

// IsDateClosed reports whether the date falls inside a CLOSED period. An EXISTS
// probe keeps the period-lock check on the posting hot path cheap.
func (r *PgxPeriodRepository) IsDateClosed(ctx context.Context, tenantID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounting_periods
			WHERE tenant_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $3
		);
	`
	var closed bool
	err := r.pool.QueryRow(ctx, query, tenantID, models.PeriodStatus(domain.PeriodClosed), date).Scan(&closed)
	if err != nil {
		return false, fmt.Errorf("failed to check period lock for tenant %s: %w", tenantID, err)
	}
	return closed, nil
}

// ClosePeriod flips an OPEN period to CLOSED. Closing an already closed period
// returns apperrors.ErrNotFound, same as a missing period.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, tenantID, periodID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND period_id = $2 AND status = $6;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		tenantID,
		periodID,
		models.PeriodStatus(domain.PeriodClosed),
		updatedAt,
		updatedBy,
		models.PeriodStatus(domain.PeriodOpen),
	)
	if err != nil {
		return fmt.Errorf("failed to close period %s: %w", periodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
