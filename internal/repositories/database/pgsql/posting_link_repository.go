package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/atlaserp/ledger_engine/internal/models"
	"github.com/atlaserp/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostingLinkRepository struct {
	pool *pgxpool.Pool
}

// newPgxPostingLinkRepository creates a new read-side repository for posting links.
func newPgxPostingLinkRepository(pool *pgxpool.Pool) portsrepo.PostingLinkRepositoryFacade {
	return &PgxPostingLinkRepository{pool: pool}
}

// Ensure PgxPostingLinkRepository implements portsrepo.PostingLinkRepositoryFacade
var _ portsrepo.PostingLinkRepositoryFacade = (*PgxPostingLinkRepository)(nil)

// FindActiveLink returns the non-reversed link for a source document, or
// apperrors.ErrNotFound when the source has never been posted (or its posting
// was reversed, which retires the link).
func (r *PgxPostingLinkRepository) FindActiveLink(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.PostingLink, error) {
	query := `
		SELECT link_id, tenant_id, source_type, source_id, entry_id, reversed, created_at
		FROM posting_links
		WHERE tenant_id = $1 AND source_type = $2 AND source_id = $3 AND NOT reversed;
	`
	var m models.PostingLink
	err := r.pool.QueryRow(ctx, query, tenantID, sourceType, sourceID).Scan(
		&m.LinkID,
		&m.TenantID,
		&m.SourceType,
		&m.SourceID,
		&m.EntryID,
		&m.Reversed,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find posting link for %s:%s: %w", sourceType, sourceID, err)
	}

	link := mapping.ToDomainPostingLink(m)
	return &link, nil
}
