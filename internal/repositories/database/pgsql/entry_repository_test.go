package pgsql_test

import (
	"context"
	"testing"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/repositories/database/pgsql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// The balance guard runs before the transaction starts, so a zero-value
// repository is enough to exercise it: an imbalanced line set must never
// reach the database even when every upstream check is bypassed.
func TestCreateEntryWithLines_RejectsImbalancedLines(t *testing.T) {
	repo := &pgsql.PgxEntryRepository{}

	entry := domain.JournalEntry{EntryID: "e-1", TenantID: "t-1", Status: domain.Posted}
	lines := []domain.JournalLine{
		{LineID: "l-1", EntryID: "e-1", LineNo: 1, AccountID: "cash", Debit: decimal.RequireFromString("100"), Credit: decimal.Zero},
		{LineID: "l-2", EntryID: "e-1", LineNo: 2, AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.RequireFromString("99")},
	}

	err := repo.CreateEntryWithLines(context.Background(), entry, lines, domain.PostingLink{})

	assert.ErrorIs(t, err, apperrors.ErrImbalanced)
}

func TestCreateEntryWithLines_RejectsImbalanceJustBeyondTolerance(t *testing.T) {
	repo := &pgsql.PgxEntryRepository{}

	entry := domain.JournalEntry{EntryID: "e-2", TenantID: "t-1", Status: domain.Posted}
	lines := []domain.JournalLine{
		{LineID: "l-1", EntryID: "e-2", LineNo: 1, AccountID: "cash", Debit: decimal.RequireFromString("100.00001"), Credit: decimal.Zero},
		{LineID: "l-2", EntryID: "e-2", LineNo: 2, AccountID: "revenue", Debit: decimal.Zero, Credit: decimal.RequireFromString("100")},
	}

	err := repo.CreateEntryWithLines(context.Background(), entry, lines, domain.PostingLink{})

	assert.ErrorIs(t, err, apperrors.ErrImbalanced)
}
