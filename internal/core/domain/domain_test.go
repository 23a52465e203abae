package domain_test

import (
	"testing"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountType_Counterpart(t *testing.T) {
	assert.Equal(t, domain.Asset, domain.ContraAsset.Counterpart())
	assert.Equal(t, domain.Liability, domain.ContraLiability.Counterpart())
	assert.Equal(t, domain.Equity, domain.ContraEquity.Counterpart())
	assert.Equal(t, domain.Income, domain.ContraIncome.Counterpart())
	assert.Equal(t, domain.Expense, domain.ContraExpense.Counterpart())
	assert.Equal(t, domain.Asset, domain.Asset.Counterpart())
}

func TestAccountType_IsValid(t *testing.T) {
	for _, valid := range []domain.AccountType{
		domain.Asset, domain.Liability, domain.Equity, domain.Income, domain.Expense,
		domain.ContraAsset, domain.ContraLiability, domain.ContraEquity,
		domain.ContraIncome, domain.ContraExpense,
	} {
		assert.True(t, valid.IsValid(), "%s should be valid", valid)
	}
	assert.False(t, domain.AccountType("SAVINGS").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestJournalLine_Swapped(t *testing.T) {
	l := domain.JournalLine{
		LineID:      "line-1",
		AccountID:   "cash",
		Debit:       decimal.NewFromInt(100),
		Credit:      decimal.Zero,
		Description: "original",
	}

	s := l.Swapped()

	assert.True(t, s.Debit.Equal(l.Credit))
	assert.True(t, s.Credit.Equal(l.Debit))
	assert.Equal(t, l.AccountID, s.AccountID)
	assert.Equal(t, l.Description, s.Description)
}

func TestAccountingPeriod_Contains(t *testing.T) {
	p := domain.AccountingPeriod{
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, p.Contains(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
}

func TestEarningOrDeduction_Resolve(t *testing.T) {
	basis := decimal.NewFromInt(1000)

	fixed := domain.EarningOrDeduction{Name: "housing", Mode: domain.FixedAmount, Amount: decimal.NewFromInt(250)}
	got, err := fixed.Resolve(basis)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(250)))

	percent := domain.EarningOrDeduction{Name: "bonus", Mode: domain.PercentOfBasis, Percent: decimal.RequireFromString("12.5")}
	got, err = percent.Resolve(basis)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(125)))

	unknown := domain.EarningOrDeduction{Name: "mystery", Mode: "HALF_OF_BASIS"}
	_, err = unknown.Resolve(basis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pay component mode")
}
