package mapping

import (
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/models"
)

// ToModelJournalEntry converts a domain entry to its storage shape.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		TenantID:     d.TenantID,
		PostingDate:  d.PostingDate,
		Memo:         d.Memo,
		Status:       models.EntryStatus(d.Status),
		SourceType:   d.SourceType,
		SourceID:     d.SourceID,
		ReversedByID: d.ReversedByID,
		PostedBy:     d.PostedBy,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a stored entry to the domain shape.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		TenantID:     m.TenantID,
		PostingDate:  m.PostingDate,
		Memo:         m.Memo,
		Status:       domain.EntryStatus(m.Status),
		SourceType:   m.SourceType,
		SourceID:     m.SourceID,
		ReversedByID: m.ReversedByID,
		PostedBy:     m.PostedBy,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line to its storage shape.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		LineNo:      d.LineNo,
		AccountID:   d.AccountID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Description: d.Description,
	}
}

// ToDomainJournalLine converts a stored line to the domain shape.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNo:      m.LineNo,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
	}
}

// ToDomainJournalLineSlice converts stored lines preserving order.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalLine(m)
	}
	return out
}

// ToModelPostingLink converts a domain posting link to its storage shape.
func ToModelPostingLink(d domain.PostingLink) models.PostingLink {
	return models.PostingLink{
		LinkID:     d.LinkID,
		TenantID:   d.TenantID,
		SourceType: d.SourceType,
		SourceID:   d.SourceID,
		EntryID:    d.EntryID,
		Reversed:   d.Reversed,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainPostingLink converts a stored posting link to the domain shape.
func ToDomainPostingLink(m models.PostingLink) domain.PostingLink {
	return domain.PostingLink{
		LinkID:     m.LinkID,
		TenantID:   m.TenantID,
		SourceType: m.SourceType,
		SourceID:   m.SourceID,
		EntryID:    m.EntryID,
		Reversed:   m.Reversed,
		CreatedAt:  m.CreatedAt,
	}
}
