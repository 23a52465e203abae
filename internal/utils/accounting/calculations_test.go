package accounting_test

import (
	"testing"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(accountID, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		AccountID: accountID,
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestTotals(t *testing.T) {
	lines := []domain.JournalLine{
		line("a", "100.50", "0"),
		line("b", "0", "60.25"),
		line("c", "0", "40.25"),
	}

	debits, credits := accounting.Totals(lines)

	assert.True(t, debits.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, credits.Equal(decimal.RequireFromString("100.50")))
}

func TestIsBalanced(t *testing.T) {
	testCases := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{"exact match", "100", "100", true},
		{"difference at tolerance", "100.000001", "100", true},
		{"difference beyond tolerance", "100.00001", "100", false},
		{"grossly imbalanced", "100", "50", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []domain.JournalLine{
				line("a", tc.debit, "0"),
				line("b", "0", tc.credit),
			}
			assert.Equal(t, tc.want, accounting.IsBalanced(lines))
		})
	}
}

func TestSignedBalance(t *testing.T) {
	d := decimal.RequireFromString("500")
	c := decimal.RequireFromString("200")

	testCases := []struct {
		name        string
		accountType domain.AccountType
		want        string
	}{
		{"asset is debit natural", domain.Asset, "300"},
		{"expense is debit natural", domain.Expense, "300"},
		{"liability is credit natural", domain.Liability, "-300"},
		{"equity is credit natural", domain.Equity, "-300"},
		{"income is credit natural", domain.Income, "-300"},
		{"contra asset inverts", domain.ContraAsset, "-300"},
		{"contra income inverts", domain.ContraIncome, "300"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.SignedBalance(tc.accountType, d, c)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := []domain.JournalLine{
		line("cash", "75", "0"),
		line("receivable", "0", "75"),
	}
	b := []domain.JournalLine{
		line("receivable", "0", "75"),
		line("cash", "75", "0"),
	}

	assert.Equal(t, accounting.Fingerprint(a), accounting.Fingerprint(b))
}

func TestFingerprint_IgnoresDescriptionsAndIDs(t *testing.T) {
	a := domain.JournalLine{LineID: "1", AccountID: "cash", Debit: decimal.NewFromInt(10), Credit: decimal.Zero, Description: "first"}
	b := domain.JournalLine{LineID: "2", AccountID: "cash", Debit: decimal.NewFromInt(10), Credit: decimal.Zero, Description: "second"}

	assert.Equal(t,
		accounting.Fingerprint([]domain.JournalLine{a}),
		accounting.Fingerprint([]domain.JournalLine{b}))
}

func TestSameLines(t *testing.T) {
	original := []domain.JournalLine{
		line("cash", "75", "0"),
		line("receivable", "0", "75"),
	}
	reordered := []domain.JournalLine{
		line("receivable", "0", "75"),
		line("cash", "75", "0"),
	}
	differentAmount := []domain.JournalLine{
		line("cash", "80", "0"),
		line("receivable", "0", "80"),
	}
	shorter := []domain.JournalLine{
		line("cash", "75", "0"),
	}

	assert.True(t, accounting.SameLines(original, reordered))
	assert.False(t, accounting.SameLines(original, differentAmount))
	assert.False(t, accounting.SameLines(original, shorter))
}
