package repositories

import (
	"context"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
)

// PostingLinkRepositoryFacade reads the idempotency join table. Writes happen
// inside the entry repository's transactions.
type PostingLinkRepositoryFacade interface {
	// FindActiveLink returns the non-reversed link for the source document, or
	// apperrors.ErrNotFound when none exists.
	FindActiveLink(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.PostingLink, error)
}
