package mapping

import (
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/models"
)

// ToDomainAuditEvent converts a stored audit event to the domain shape.
func ToDomainAuditEvent(m models.AuditEvent) domain.AuditEvent {
	return domain.AuditEvent{
		EventID:    m.EventID,
		TenantID:   m.TenantID,
		ActorID:    m.ActorID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Action:     m.Action,
		Metadata:   m.Metadata,
		CreatedAt:  m.CreatedAt,
	}
}
