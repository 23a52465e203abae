package accounting

import (
	"sort"
	"strings"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum permitted difference between an entry's debit and
// credit totals (6 decimal places).
var Tolerance = decimal.New(1, -6)

// Totals sums the debit and credit sides of a line set.
func Totals(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// IsBalanced reports whether the line set's debit and credit totals agree
// within Tolerance.
func IsBalanced(lines []domain.JournalLine) bool {
	debits, credits := Totals(lines)
	return debits.Sub(credits).Abs().LessThanOrEqual(Tolerance)
}

// SignedBalance converts raw debit/credit totals into the conventional signed
// balance for the account type: asset and expense accounts carry a natural
// debit balance, the rest a natural credit balance, and contra types invert
// their counterpart's sign.
func SignedBalance(t domain.AccountType, debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	natural := t.Counterpart()
	var balance decimal.Decimal
	switch natural {
	case domain.Asset, domain.Expense:
		balance = debitTotal.Sub(creditTotal)
	default:
		balance = creditTotal.Sub(debitTotal)
	}
	if t.IsContra() {
		balance = balance.Neg()
	}
	return balance
}

// Fingerprint produces a canonical representation of a line set, used to decide
// whether a re-posted source document carries identical content. Line order,
// IDs and descriptions are irrelevant; account, side and amount are not.
func Fingerprint(lines []domain.JournalLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.AccountID + "|" + l.Debit.String() + "|" + l.Credit.String()
	}
	// Sort for order independence.
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

// SameLines reports whether two line sets are economically identical.
func SameLines(a, b []domain.JournalLine) bool {
	if len(a) != len(b) {
		return false
	}
	return Fingerprint(a) == Fingerprint(b)
}
