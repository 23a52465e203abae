package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/atlaserp/ledger_engine/internal/models"
	"github.com/atlaserp/ledger_engine/internal/utils/mapping"
	"github.com/atlaserp/ledger_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for the audit event log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{pool: pool}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveEvent appends one event to the audit log.
func (r *PgxAuditRepository) SaveEvent(ctx context.Context, event domain.AuditEvent) error {
	query := `
		INSERT INTO audit_events (event_id, tenant_id, actor_id, entity_type, entity_id, action, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		event.EventID,
		event.TenantID,
		event.ActorID,
		event.EntityType,
		event.EntityID,
		event.Action,
		event.Metadata, // jsonb
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit event %s: %w", event.EventID, err)
	}
	return nil
}

// ListEventsByEntity retrieves a paginated list of audit events for one entity,
// newest first.
func (r *PgxAuditRepository) ListEventsByEntity(ctx context.Context, tenantID, entityType, entityID string, limit int, nextToken *string) ([]domain.AuditEvent, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT event_id, tenant_id, actor_id, entity_type, entity_id, action, metadata, created_at
		FROM audit_events
		WHERE tenant_id = $1 AND entity_type = $2 AND entity_id = $3
	`
	orderByClause := `ORDER BY created_at DESC`

	args := []interface{}{tenantID, entityType, entityID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		query += ` AND created_at < $4`
		args = append(args, lastCreatedAt)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit events for %s %s: %w", entityType, entityID, err)
	}
	defer rows.Close()

	modelEvents := make([]models.AuditEvent, 0, fetchLimit)
	for rows.Next() {
		var m models.AuditEvent
		if err := rows.Scan(
			&m.EventID,
			&m.TenantID,
			&m.ActorID,
			&m.EntityType,
			&m.EntityID,
			&m.Action,
			&m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan audit event row: %w", err)
		}
		modelEvents = append(modelEvents, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating audit event rows: %w", err)
	}

	var nextTokenVal *string
	results := modelEvents
	if len(modelEvents) > limit {
		last := modelEvents[limit-1]
		token := pagination.EncodeDateBasedToken(last.CreatedAt)
		nextTokenVal = &token
		results = modelEvents[:limit]
	}

	events := make([]domain.AuditEvent, len(results))
	for i, m := range results {
		events[i] = mapping.ToDomainAuditEvent(m)
	}

	return events, nextTokenVal, nil
}
