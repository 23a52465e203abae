package services

import (
	"context"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/dto"
)

// AuditSvcFacade appends to and reads the append-only audit log.
type AuditSvcFacade interface {
	// Record appends one event. It is called after the state transition's
	// transaction has committed; a failed append is logged, never propagated.
	Record(ctx context.Context, event domain.AuditEvent)
	ListForEntity(ctx context.Context, tenantID, entityType, entityID string, params dto.ListAuditEventsParams) (*dto.ListAuditEventsResponse, error)
}
