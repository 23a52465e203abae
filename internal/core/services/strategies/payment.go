package strategies

import (
	"fmt"

	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentReceipt is the slice of a received payment the posting strategy needs.
type PaymentReceipt struct {
	PaymentRef string
	Amount     decimal.Decimal
}

// PaymentAccounts names the accounts a payment receipt touches.
type PaymentAccounts struct {
	Cash       string
	Receivable string
}

// BuildPaymentReceiptLines derives the posting lines for a customer payment:
// debit cash, credit the receivable it settles.
func BuildPaymentReceiptLines(p PaymentReceipt, accounts PaymentAccounts) ([]dto.PostingLineRequest, error) {
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment %s amount is %s", ErrNonPositiveAmount, p.PaymentRef, p.Amount)
	}
	return []dto.PostingLineRequest{
		{AccountID: accounts.Cash, Debit: p.Amount, Description: "Payment " + p.PaymentRef},
		{AccountID: accounts.Receivable, Credit: p.Amount, Description: "Payment " + p.PaymentRef},
	}, nil
}
