package domain

// AccountType defines the fundamental accounting type of an account.
// Contra types invert the natural balance sign of their counterpart.
type AccountType string

const (
	Asset           AccountType = "ASSET"
	Liability       AccountType = "LIABILITY"
	Equity          AccountType = "EQUITY"
	Income          AccountType = "INCOME"
	Expense         AccountType = "EXPENSE"
	ContraAsset     AccountType = "CONTRA_ASSET"
	ContraLiability AccountType = "CONTRA_LIABILITY"
	ContraEquity    AccountType = "CONTRA_EQUITY"
	ContraIncome    AccountType = "CONTRA_INCOME"
	ContraExpense   AccountType = "CONTRA_EXPENSE"
)

// IsContra reports whether the type inverts its counterpart's natural balance.
func (t AccountType) IsContra() bool {
	switch t {
	case ContraAsset, ContraLiability, ContraEquity, ContraIncome, ContraExpense:
		return true
	}
	return false
}

// Counterpart returns the natural type a contra type offsets. Non-contra types
// return themselves.
func (t AccountType) Counterpart() AccountType {
	switch t {
	case ContraAsset:
		return Asset
	case ContraLiability:
		return Liability
	case ContraEquity:
		return Equity
	case ContraIncome:
		return Income
	case ContraExpense:
		return Expense
	}
	return t
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return t.IsContra()
}

// Account is a node in a tenant's chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"` // Primary Key (UUID)
	TenantID        string      `json:"tenantID"`
	Code            string      `json:"code"` // Unique per tenant
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID"` // Nullable, self-referential
	IsActive        bool        `json:"isActive"`
	AuditFields
}
