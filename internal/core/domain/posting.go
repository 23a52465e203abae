package domain

import "time"

// PostingLink ties a source business document to the journal entry it produced.
// At most one non-reversed link may exist per (tenant, source type, source id);
// this uniqueness is the posting engine's idempotency guard and is enforced by
// the storage layer.
type PostingLink struct {
	LinkID     string    `json:"linkID"` // Primary Key (UUID)
	TenantID   string    `json:"tenantID"`
	SourceType string    `json:"sourceType"`
	SourceID   string    `json:"sourceID"`
	EntryID    string    `json:"entryID"`
	Reversed   bool      `json:"reversed"` // Set when the linked entry is reversed
	CreatedAt  time.Time `json:"createdAt"`
}
