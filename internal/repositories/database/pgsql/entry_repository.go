package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	"github.com/atlaserp/ledger_engine/internal/models"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
	"github.com/atlaserp/ledger_engine/internal/utils/mapping"
	"github.com/atlaserp/ledger_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const insertEntryQuery = `
	INSERT INTO journal_entries (
		entry_id, tenant_id, posting_date, memo, status,
		source_type, source_id, reversed_by_id, posted_by,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

const insertLineQuery = `
	INSERT INTO journal_lines (line_id, entry_id, line_no, account_id, debit, credit, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

const insertLinkQuery = `
	INSERT INTO posting_links (link_id, tenant_id, source_type, source_id, entry_id, reversed, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// CreateEntryWithLines persists the entry, its lines and the posting link in a
// single database transaction. The partial unique index on posting_links is the
// real idempotency guard: a concurrent insert of the same source link loses the
// race with a unique violation, surfaced here as apperrors.ErrDuplicate so the
// service can re-read the winner's entry.
//
// The store enforces its own invariants independently of upstream checks: an
// imbalanced line set is rejected with apperrors.ErrImbalanced before the
// transaction starts, and every referenced account must exist for the tenant
// and be active.
func (r *PgxEntryRepository) CreateEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink) error {
	if !accounting.IsBalanced(lines) {
		debits, credits := accounting.Totals(lines)
		return fmt.Errorf("%w: debits total %s, credits total %s", apperrors.ErrImbalanced, debits, credits)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction commits

	if err := checkLineAccounts(ctx, tx, entry.TenantID, lines); err != nil {
		return err
	}

	modelEntry := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, insertEntryQuery,
		modelEntry.EntryID,
		modelEntry.TenantID,
		modelEntry.PostingDate,
		modelEntry.Memo,
		modelEntry.Status,
		modelEntry.SourceType,
		modelEntry.SourceID,
		modelEntry.ReversedByID,
		modelEntry.PostedBy,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNo,
			modelLine.AccountID,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			// An account vanished between the in-transaction check and the
			// insert; the FK on journal_lines.account_id is the backstop.
			return fmt.Errorf("%w: line references a nonexistent account", apperrors.ErrUnknownAccount)
		}
		return fmt.Errorf("failed to insert lines for entry %s: %w", modelEntry.EntryID, err)
	}

	modelLink := mapping.ToModelPostingLink(link)
	_, err = tx.Exec(ctx, insertLinkQuery,
		modelLink.LinkID,
		modelLink.TenantID,
		modelLink.SourceType,
		modelLink.SourceID,
		modelLink.EntryID,
		modelLink.Reversed,
		modelLink.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// Another posting of the same source document committed first.
			return fmt.Errorf("%w: posting link for %s:%s", apperrors.ErrDuplicate, modelLink.SourceType, modelLink.SourceID)
		}
		return fmt.Errorf("failed to insert posting link for entry %s: %w", modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// checkLineAccounts verifies, inside the transaction, that every account the
// lines reference exists for the tenant and is active. The FK constraint only
// catches nonexistent accounts, with an unclassified error and no tenant scope.
func checkLineAccounts(ctx context.Context, tx pgx.Tx, tenantID string, lines []domain.JournalLine) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}

	query := `SELECT account_id, is_active FROM accounts WHERE tenant_id = $1 AND account_id = ANY($2);`
	rows, err := tx.Query(ctx, query, tenantID, ids)
	if err != nil {
		return fmt.Errorf("failed to check line accounts: %w", err)
	}
	defer rows.Close()

	active := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		var isActive bool
		if err := rows.Scan(&id, &isActive); err != nil {
			return fmt.Errorf("failed to scan line account row: %w", err)
		}
		active[id] = isActive
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating line account rows: %w", err)
	}

	for _, id := range ids {
		isActive, ok := active[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrUnknownAccount, id)
		}
		if !isActive {
			return fmt.Errorf("%w: account %s", apperrors.ErrInactiveAccount, id)
		}
	}
	return nil
}

const selectEntryColumns = `
	entry_id, tenant_id, posting_date, memo, status,
	source_type, source_id, reversed_by_id, posted_by,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	var reversedByID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.PostingDate,
		&m.Memo,
		&m.Status,
		&m.SourceType,
		&m.SourceID,
		&reversedByID,
		&m.PostedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if reversedByID.Valid {
		m.ReversedByID = &reversedByID.String
	}
	return m, nil
}

// FindEntryByID retrieves a single journal entry scoped to the tenant.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(m)
	return &domainEntry, nil
}

// FindLinesByEntryID retrieves the entry's lines ordered by line number.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, line_no, account_id, debit, credit, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelLines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.LineNo,
			&l.AccountID,
			&l.Debit,
			&l.Credit,
			&l.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line row for entry %s: %w", entryID, err)
		}
		modelLines = append(modelLines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for entry %s: %w", entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(modelLines), nil
}

// ListEntriesByTenant retrieves a paginated list of entries using token-based pagination.
// It returns the entries, a token for the next page, and an error.
func (r *PgxEntryRepository) ListEntriesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE tenant_id = $1`
	// Ordering must be stable; created_at breaks posting_date ties.
	orderByClause := `ORDER BY posting_date DESC, created_at DESC`

	args := []interface{}{tenantID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastPostingDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		// Tuple comparison is concise and efficient in Postgres.
		query += ` AND (posting_date, created_at) < ($2, $3)`
		args = append(args, lastPostingDate, lastCreatedAt)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entries for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row for tenant %s: %w", tenantID, scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entry rows for tenant %s: %w", tenantID, err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1] // The last item included in this page
		token := pagination.EncodeToken(last.PostingDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	domainEntries := make([]domain.JournalEntry, len(results))
	for i, m := range results {
		domainEntries[i] = mapping.ToDomainJournalEntry(m)
	}

	return domainEntries, nextTokenVal, nil
}

// ReverseEntry atomically inserts the reversal entry with its lines and posting
// link, flips the original entry to REVERSED and retires the original's posting
// link. The guarded UPDATE on the original's status is what makes concurrent
// reversal attempts safe: only one transaction sees a POSTED row to flip.
func (r *PgxEntryRepository) ReverseEntry(ctx context.Context, original domain.JournalEntry, reversal domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Flip the original first so a concurrent reversal fails fast.
	flipQuery := `
		UPDATE journal_entries
		SET status = $3,
		    reversed_by_id = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE tenant_id = $1 AND entry_id = $2 AND status = $7;
	`
	cmdTag, err := tx.Exec(ctx, flipQuery,
		original.TenantID,
		original.EntryID,
		models.EntryStatus(domain.Reversed),
		reversal.EntryID,
		updatedAt,
		updatedBy,
		models.EntryStatus(domain.Posted),
	)
	if err != nil {
		return fmt.Errorf("failed to update status of entry %s: %w", original.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The original was reversed (or never posted) by the time we got here.
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyReversed, original.EntryID)
	}

	// 2. Retire the original's posting link so the source can be posted again.
	retireQuery := `UPDATE posting_links SET reversed = true WHERE tenant_id = $1 AND entry_id = $2 AND NOT reversed;`
	if _, err := tx.Exec(ctx, retireQuery, original.TenantID, original.EntryID); err != nil {
		return fmt.Errorf("failed to retire posting link for entry %s: %w", original.EntryID, err)
	}

	// 3. Insert the reversal entry.
	modelReversal := mapping.ToModelJournalEntry(reversal)
	_, err = tx.Exec(ctx, insertEntryQuery,
		modelReversal.EntryID,
		modelReversal.TenantID,
		modelReversal.PostingDate,
		modelReversal.Memo,
		modelReversal.Status,
		modelReversal.SourceType,
		modelReversal.SourceID,
		modelReversal.ReversedByID,
		modelReversal.PostedBy,
		modelReversal.CreatedAt,
		modelReversal.CreatedBy,
		modelReversal.LastUpdatedAt,
		modelReversal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reversal entry %s: %w", modelReversal.EntryID, err)
	}

	// 4. Insert the mirrored lines.
	batch := &pgx.Batch{}
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNo,
			modelLine.AccountID,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert lines for reversal entry %s: %w", modelReversal.EntryID, err)
	}

	// 5. Insert the reversal's own posting link.
	modelLink := mapping.ToModelPostingLink(link)
	_, err = tx.Exec(ctx, insertLinkQuery,
		modelLink.LinkID,
		modelLink.TenantID,
		modelLink.SourceType,
		modelLink.SourceID,
		modelLink.EntryID,
		modelLink.Reversed,
		modelLink.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: reversal link for entry %s", apperrors.ErrDuplicate, original.EntryID)
		}
		return fmt.Errorf("failed to insert reversal link for entry %s: %w", original.EntryID, err)
	}

	return r.Commit(ctx, tx)
}
