package repositories

import (
	"context"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// EntryRepositoryFacade is the ledger store: durable, transactional persistence
// of journal entries, their lines and posting links.
type EntryRepositoryFacade interface {
	// CreateEntryWithLines inserts the entry, all of its lines and the posting
	// link as one all-or-nothing database transaction. A concurrent insert of
	// the same (tenant, source type, source id) link fails the storage-level
	// uniqueness constraint and is surfaced as apperrors.ErrDuplicate.
	CreateEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink) error

	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	// FindLinesByEntryID returns the entry's lines ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	ListEntriesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ReverseEntry atomically inserts the reversal entry (with lines and its own
	// posting link), flips the original entry to REVERSED with the reversed-by
	// pointer, and retires the original's posting link. If the original is no
	// longer POSTED the whole transaction is rolled back with
	// apperrors.ErrAlreadyReversed.
	ReverseEntry(ctx context.Context, original domain.JournalEntry, reversal domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink, updatedBy string, updatedAt time.Time) error
}
