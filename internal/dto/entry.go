package dto

import (
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is the API shape of one entry leg.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse is the API shape of a journal entry.
type JournalEntryResponse struct {
	EntryID      string                `json:"entryID"`
	PostingDate  time.Time             `json:"postingDate"`
	Memo         string                `json:"memo,omitempty"`
	Status       domain.EntryStatus    `json:"status"`
	SourceType   string                `json:"sourceType"`
	SourceID     string                `json:"sourceID"`
	ReversedByID *string               `json:"reversedByID,omitempty"`
	PostedBy     string                `json:"postedBy"`
	CreatedAt    time.Time             `json:"createdAt"`
	Lines        []JournalLineResponse `json:"lines,omitempty"`
}

// ListEntriesParams controls entry listing pagination.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is a page of entries plus the cursor for the next page.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse maps a domain entry (and any loaded lines) to its API shape.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:      e.EntryID,
		PostingDate:  e.PostingDate,
		Memo:         e.Memo,
		Status:       e.Status,
		SourceType:   e.SourceType,
		SourceID:     e.SourceID,
		ReversedByID: e.ReversedByID,
		PostedBy:     e.PostedBy,
		CreatedAt:    e.CreatedAt,
	}
	if e.Lines != nil {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:      l.LineID,
				LineNo:      l.LineNo,
				AccountID:   l.AccountID,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Description: l.Description,
			}
		}
	}
	return resp
}
