package repositories

import (
	"context"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// AuditRepositoryFacade appends to and reads the audit event log.
type AuditRepositoryFacade interface {
	SaveEvent(ctx context.Context, event domain.AuditEvent) error
	ListEventsByEntity(ctx context.Context, tenantID, entityType, entityID string, limit int, nextToken *string) ([]domain.AuditEvent, *string, error)
}
