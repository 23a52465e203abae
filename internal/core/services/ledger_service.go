package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/middleware"
)

// ledgerService provides the read side of the ledger store.
type ledgerService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewLedgerService creates the entry query service.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{entryRepo: entryRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetEntry retrieves an entry with its lines, ordered by line number.
func (s *ledgerService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntries retrieves a paginated list of the tenant's entries, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, nextToken, err := s.entryRepo.ListEntriesByTenant(ctx, tenantID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}
