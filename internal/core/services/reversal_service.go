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
)

// reversalService produces exact mirror-image entries for previously posted
// ones, preserving full traceability. History is never deleted.
type reversalService struct {
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewReversalService creates the reversal engine.
func NewReversalService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.ReversalSvcFacade {
	return &reversalService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

// Reverse builds the debit/credit swap of the original entry and posts it while
// flipping the original to REVERSED, all in one database transaction. The swap
// preserves balance by construction, so only closed-period and account-active
// checks are re-run, against the reversal's own posting date.
func (s *reversalService) Reverse(ctx context.Context, tenantID, actorID string, req dto.ReversalRequest) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.entryRepo.FindEntryByID(ctx, tenantID, req.OriginalEntryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Original entry not found for reversal", slog.String("entry_id", req.OriginalEntryID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load original entry %s: %w", req.OriginalEntryID, err)
	}

	switch original.Status {
	case domain.Posted:
		// Reversible.
	case domain.Reversed:
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyReversed, original.EntryID)
	default:
		return nil, fmt.Errorf("%w: entry %s has status %s", apperrors.ErrNotPosted, original.EntryID, original.Status)
	}

	originalLines, err := s.entryRepo.FindLinesByEntryID(ctx, original.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines of entry %s: %w", original.EntryID, err)
	}

	reversalDate := req.ReversalDate
	if reversalDate.IsZero() {
		reversalDate = time.Now().UTC()
	}

	if err := s.checkReversalPreconditions(ctx, tenantID, reversalDate, originalLines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()

	memo := req.Memo
	if memo == "" {
		memo = "Reversal of: " + original.Memo
	}

	reversal := domain.JournalEntry{
		EntryID:     reversalID,
		TenantID:    tenantID,
		PostingDate: reversalDate,
		Memo:        memo,
		Status:      domain.Posted,
		SourceType:  domain.SourceTypeReversal,
		SourceID:    original.EntryID,
		PostedBy:    actorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	// Swap debit and credit on every line: same account, same amount, same
	// ordering, mirrored sides.
	swapped := make([]domain.JournalLine, len(originalLines))
	for i, l := range originalLines {
		swapped[i] = l.Swapped()
		swapped[i].LineID = uuid.NewString()
		swapped[i].EntryID = reversalID
	}

	link := domain.PostingLink{
		LinkID:     uuid.NewString(),
		TenantID:   tenantID,
		SourceType: domain.SourceTypeReversal,
		SourceID:   original.EntryID,
		EntryID:    reversalID,
		CreatedAt:  now,
	}

	if err := s.entryRepo.ReverseEntry(ctx, *original, reversal, swapped, link, actorID, now); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyReversed) {
			logger.Warn("Entry reversed concurrently", slog.String("entry_id", original.EntryID))
			return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyReversed, original.EntryID)
		}
		logger.Error("Failed to persist reversal", slog.String("error", err.Error()), slog.String("entry_id", original.EntryID))
		return nil, fmt.Errorf("failed to persist reversal of entry %s: %w", original.EntryID, err)
	}

	s.auditSvc.Record(ctx, domain.AuditEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID,
		ActorID:    actorID,
		EntityType: "journal_entry",
		EntityID:   original.EntryID,
		Action:     domain.ActionEntryReversed,
		Metadata: map[string]string{
			"reversalEntryID": reversalID,
			"reason":          req.Reason,
		},
		CreatedAt: now,
	})

	logger.Info("Journal entry reversed",
		slog.String("entry_id", original.EntryID),
		slog.String("reversal_entry_id", reversalID),
	)
	return &dto.ReversalResult{
		Success:          true,
		ReversalEntryID:  reversalID,
		OriginalEntryID:  original.EntryID,
		OriginalReversed: true,
	}, nil
}

// checkReversalPreconditions re-runs the period-lock and account-active checks
// for the reversal's posting date. The balance check is skipped: the swap
// preserves the invariant.
func (s *reversalService) checkReversalPreconditions(ctx context.Context, tenantID string, reversalDate time.Time, lines []domain.JournalLine) error {
	closed, err := s.periodRepo.IsDateClosed(ctx, tenantID, reversalDate)
	if err != nil {
		return fmt.Errorf("failed to check period lock: %w", err)
	}
	if closed {
		return fmt.Errorf("%w: reversal date %s", apperrors.ErrClosedPeriod, reversalDate.Format("2006-01-02"))
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for reversal: %w", err)
	}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: account %s", apperrors.ErrUnknownAccount, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s", apperrors.ErrInactiveAccount, id)
		}
	}
	return nil
}
