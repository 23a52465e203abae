package models

import "time"

// AuditEvent is the audit_events table row. Rows are append-only; there is no
// update or delete path anywhere in the codebase.
type AuditEvent struct {
	EventID    string            `db:"event_id"`
	TenantID   string            `db:"tenant_id"`
	ActorID    string            `db:"actor_id"`
	EntityType string            `db:"entity_type"`
	EntityID   string            `db:"entity_id"`
	Action     string            `db:"action"`
	Metadata   map[string]string `db:"metadata"` // jsonb
	CreatedAt  time.Time         `db:"created_at"`
}
