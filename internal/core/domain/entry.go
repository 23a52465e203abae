package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	// Draft only exists inside the engine's transaction; a committed entry is
	// never observable in this state.
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// SourceTypeReversal is the source type recorded on entries created by the
// reversal engine; their source ID is the original entry's ID.
const SourceTypeReversal = "reversal"

// JournalEntry is an atomic, balanced financial event. Once posted, the entry
// and its lines are immutable except for the transition to REVERSED.
type JournalEntry struct {
	EntryID      string      `json:"entryID"` // Primary Key (UUID)
	TenantID     string      `json:"tenantID"`
	PostingDate  time.Time   `json:"postingDate"`
	Memo         string      `json:"memo"`
	Status       EntryStatus `json:"status"`
	SourceType   string      `json:"sourceType"` // e.g. "sales_doc", "payment", "reversal"
	SourceID     string      `json:"sourceID"`
	ReversedByID *string     `json:"reversedByID"` // Set when status becomes REVERSED
	PostedBy     string      `json:"postedBy"`     // Actor ID
	AuditFields

	// Lines are loaded on demand; nil means "not fetched".
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is one debit-or-credit leg of an entry. Exactly one of Debit and
// Credit is nonzero, except for zero-amount placeholder lines.
type JournalLine struct {
	LineID      string          `json:"lineID"` // Primary Key (UUID)
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"` // Stable ordering within the entry
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`  // Non-negative
	Credit      decimal.Decimal `json:"credit"` // Non-negative
	Description string          `json:"description"`
}

// Swapped returns the mirror-image of the line: same account and amounts with
// debit and credit sides exchanged.
func (l JournalLine) Swapped() JournalLine {
	out := l
	out.Debit = l.Credit
	out.Credit = l.Debit
	return out
}
