package dto

import (
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// AuditEventResponse is the API shape of an audit event.
type AuditEventResponse struct {
	EventID    string            `json:"eventID"`
	ActorID    string            `json:"actorID"`
	EntityType string            `json:"entityType"`
	EntityID   string            `json:"entityID"`
	Action     string            `json:"action"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ListAuditEventsParams controls audit listing pagination.
type ListAuditEventsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListAuditEventsResponse is a page of audit events.
type ListAuditEventsResponse struct {
	Events    []AuditEventResponse `json:"events"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToAuditEventResponses maps domain events to their API shape.
func ToAuditEventResponses(events []domain.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, len(events))
	for i, e := range events {
		out[i] = AuditEventResponse{
			EventID:    e.EventID,
			ActorID:    e.ActorID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Metadata:   e.Metadata,
			CreatedAt:  e.CreatedAt,
		}
	}
	return out
}
