package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
)

// postingService converts source documents into posted journal entries,
// exactly once per source document.
type postingService struct {
	entryRepo     portsrepo.EntryRepositoryFacade
	linkRepo      portsrepo.PostingLinkRepositoryFacade
	validationSvc portssvc.ValidationSvcFacade
	auditSvc      portssvc.AuditSvcFacade
}

// NewPostingService creates the posting engine.
func NewPostingService(entryRepo portsrepo.EntryRepositoryFacade, linkRepo portsrepo.PostingLinkRepositoryFacade, validationSvc portssvc.ValidationSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		entryRepo:     entryRepo,
		linkRepo:      linkRepo,
		validationSvc: validationSvc,
		auditSvc:      auditSvc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// Post validates the candidate lines and persists entry, lines and posting
// link in one database transaction. Retried calls for the same source document
// are answered idempotently: the existing entry ID is returned and nothing new
// is written. A duplicate source carrying different line content fails with
// apperrors.ErrSourceAlreadyPosted.
func (s *postingService) Post(ctx context.Context, tenantID, actorID string, req dto.PostingRequest) (*dto.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SourceType == domain.SourceTypeReversal {
		return nil, fmt.Errorf("%w: source type %q is reserved for the reversal engine", apperrors.ErrValidation, domain.SourceTypeReversal)
	}

	lines := req.ToDomainLines()

	// Idempotency check: an active link means this source document already
	// produced a posted entry.
	existing, err := s.linkRepo.FindActiveLink(ctx, tenantID, req.SourceType, req.SourceID)
	if err == nil {
		return s.idempotentResult(ctx, existing, lines)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up posting link", slog.String("error", err.Error()), slog.String("source_id", req.SourceID))
		return nil, fmt.Errorf("failed to look up posting link: %w", err)
	}

	violations, err := s.validationSvc.Validate(ctx, tenantID, req.PostingDate, lines)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		logger.Warn("Posting rejected by validation gate",
			slog.String("source_type", req.SourceType),
			slog.String("source_id", req.SourceID),
			slog.Int("violations", len(violations)),
		)
		return nil, &ValidationError{Violations: violations}
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    tenantID,
		PostingDate: req.PostingDate,
		Memo:        req.Memo,
		// The entry is only ever observable as POSTED: the draft state lives and
		// dies inside the insert transaction.
		Status:     domain.Posted,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
		PostedBy:   actorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
	}
	link := domain.PostingLink{
		LinkID:     uuid.NewString(),
		TenantID:   tenantID,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
		EntryID:    entryID,
		CreatedAt:  now,
	}

	err = s.entryRepo.CreateEntryWithLines(ctx, entry, lines, link)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// A concurrent call for the same source document won the storage-level
		// uniqueness race. Re-read the committed link and answer idempotently.
		logger.Info("Lost posting race, resolving against committed link",
			slog.String("source_type", req.SourceType),
			slog.String("source_id", req.SourceID),
		)
		committed, lookupErr := s.linkRepo.FindActiveLink(ctx, tenantID, req.SourceType, req.SourceID)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to resolve concurrent posting for %s:%s: %w", req.SourceType, req.SourceID, lookupErr)
		}
		return s.idempotentResult(ctx, committed, lines)
	}
	if err != nil {
		logger.Error("Failed to persist journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to persist journal entry: %w", err)
	}

	// Audit is emitted after the transaction committed; the entry is durable.
	s.auditSvc.Record(ctx, domain.AuditEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID,
		ActorID:    actorID,
		EntityType: "journal_entry",
		EntityID:   entryID,
		Action:     domain.ActionEntryPosted,
		Metadata: map[string]string{
			"sourceType": req.SourceType,
			"sourceID":   req.SourceID,
		},
		CreatedAt: now,
	})

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("source_type", req.SourceType),
		slog.String("source_id", req.SourceID),
	)
	return &dto.PostingResult{Success: true, JournalEntryID: entryID, Idempotent: false}, nil
}

// idempotentResult answers a duplicate post. Identical line content returns the
// committed entry ID tagged idempotent; different content is a caller logic
// error, never silently accepted.
func (s *postingService) idempotentResult(ctx context.Context, link *domain.PostingLink, candidate []domain.JournalLine) (*dto.PostingResult, error) {
	committed, err := s.entryRepo.FindLinesByEntryID(ctx, link.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines of entry %s for idempotency comparison: %w", link.EntryID, err)
	}
	if !accounting.SameLines(committed, candidate) {
		return nil, fmt.Errorf("%w: source %s:%s is linked to entry %s", apperrors.ErrSourceAlreadyPosted, link.SourceType, link.SourceID, link.EntryID)
	}
	return &dto.PostingResult{Success: true, JournalEntryID: link.EntryID, Idempotent: true}, nil
}
