package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
)

// auditService writes the append-only event log consumed by compliance views.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates the audit logger.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends one event. The engines call this after their transaction has
// committed, so a failed append must not fail the already-durable operation;
// it is logged for the operator instead.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) {
	if err := s.auditRepo.SaveEvent(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit event",
			slog.String("error", err.Error()),
			slog.String("entity_type", event.EntityType),
			slog.String("entity_id", event.EntityID),
			slog.String("action", event.Action),
		)
	}
}

// ListForEntity retrieves a paginated slice of an entity's audit trail.
func (s *auditService) ListForEntity(ctx context.Context, tenantID, entityType, entityID string, params dto.ListAuditEventsParams) (*dto.ListAuditEventsResponse, error) {
	events, nextToken, err := s.auditRepo.ListEventsByEntity(ctx, tenantID, entityType, entityID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit events: %w", err)
	}
	return &dto.ListAuditEventsResponse{
		Events:    dto.ToAuditEventResponses(events),
		NextToken: nextToken,
	}, nil
}
