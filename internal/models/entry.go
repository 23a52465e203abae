package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors the domain entry statuses at the storage layer.
type EntryStatus string

// JournalEntry is the journal_entries table row.
type JournalEntry struct {
	EntryID      string      `db:"entry_id"`
	TenantID     string      `db:"tenant_id"`
	PostingDate  time.Time   `db:"posting_date"`
	Memo         string      `db:"memo"`
	Status       EntryStatus `db:"status"`
	SourceType   string      `db:"source_type"`
	SourceID     string      `db:"source_id"`
	ReversedByID *string     `db:"reversed_by_id"` // Nullable
	PostedBy     string      `db:"posted_by"`
	AuditFields
}

// JournalLine is the journal_lines table row. Lines are immutable after their
// entry commits, hence no audit columns beyond the owning entry's.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
}

// PostingLink is the posting_links table row: the idempotency join record.
type PostingLink struct {
	LinkID     string    `db:"link_id"`
	TenantID   string    `db:"tenant_id"`
	SourceType string    `db:"source_type"`
	SourceID   string    `db:"source_id"`
	EntryID    string    `db:"entry_id"`
	Reversed   bool      `db:"reversed"`
	CreatedAt  time.Time `db:"created_at"`
}
