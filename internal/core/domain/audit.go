package domain

import "time"

// Audit actions recorded by the posting and reversal engines.
const (
	ActionEntryPosted    = "journal_entry_posted"
	ActionEntryReversed  = "journal_entry_reversed"
	ActionPeriodClosed   = "accounting_period_closed"
	ActionAccountCreated = "account_created"
)

// AuditEvent is an append-only record of a state transition. Events are never
// mutated or deleted.
type AuditEvent struct {
	EventID    string            `json:"eventID"` // Primary Key (UUID)
	TenantID   string            `json:"tenantID"`
	ActorID    string            `json:"actorID"`
	EntityType string            `json:"entityType"` // e.g. "journal_entry"
	EntityID   string            `json:"entityID"`
	Action     string            `json:"action"`
	Metadata   map[string]string `json:"metadata"`
	CreatedAt  time.Time         `json:"createdAt"`
}
