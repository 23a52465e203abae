package dto

import (
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLineRequest is one candidate leg of an entry. Amounts are non-negative;
// exactly one side should be nonzero.
type PostingLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// PostingRequest asks the posting engine to turn a source document into a
// posted journal entry. The caller supplies already-computed balanced lines;
// amount derivation belongs to the domain module's posting strategy.
type PostingRequest struct {
	SourceType  string               `json:"sourceType" binding:"required"`
	SourceID    string               `json:"sourceID" binding:"required"`
	PostingDate time.Time            `json:"postingDate" binding:"required"`
	Memo        string               `json:"memo"`
	Lines       []PostingLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToDomainLines converts the request lines, assigning stable line numbers from
// the request order.
func (r PostingRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			LineNo:      i + 1,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return lines
}

// PostingResult reports the outcome of a successful (possibly idempotent) post.
type PostingResult struct {
	Success        bool   `json:"success"`
	JournalEntryID string `json:"journalEntryID"`
	// Idempotent is true when an identical post for the same source document
	// had already been committed and no new rows were written.
	Idempotent bool `json:"idempotent"`
}

// ReversalRequest asks the reversal engine to mirror a posted entry.
type ReversalRequest struct {
	OriginalEntryID string `json:"originalEntryID" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	Memo            string `json:"memo"`
	// ReversalDate defaults to now when zero; closed-period checks run against it.
	ReversalDate time.Time `json:"reversalDate"`
}

// ReversalResult reports the outcome of a reversal.
type ReversalResult struct {
	Success          bool   `json:"success"`
	ReversalEntryID  string `json:"reversalEntryID"`
	OriginalEntryID  string `json:"originalEntryID"`
	OriginalReversed bool   `json:"originalReversed"`
}
