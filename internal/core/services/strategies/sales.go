package strategies

import (
	"fmt"

	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// SalesInvoice is the slice of a sales document the posting strategy needs.
type SalesInvoice struct {
	InvoiceNo string
	Total     decimal.Decimal // Gross total including tax
	Tax       decimal.Decimal // Portion of Total owed as tax; zero when untaxed
}

// SalesAccounts names the accounts a sales posting touches.
type SalesAccounts struct {
	Receivable string
	Revenue    string
	TaxPayable string
}

// BuildSalesInvoiceLines derives the posting lines for an issued invoice:
// debit receivable for the gross total, credit revenue for the net and tax
// payable for the tax portion.
func BuildSalesInvoiceLines(inv SalesInvoice, accounts SalesAccounts) ([]dto.PostingLineRequest, error) {
	if !inv.Total.IsPositive() {
		return nil, fmt.Errorf("%w: invoice %s total is %s", ErrNonPositiveAmount, inv.InvoiceNo, inv.Total)
	}
	if inv.Tax.IsNegative() || inv.Tax.GreaterThan(inv.Total) {
		return nil, fmt.Errorf("invoice %s tax %s exceeds total %s", inv.InvoiceNo, inv.Tax, inv.Total)
	}

	net := inv.Total.Sub(inv.Tax)
	lines := []dto.PostingLineRequest{
		{AccountID: accounts.Receivable, Debit: inv.Total, Description: "Invoice " + inv.InvoiceNo},
		{AccountID: accounts.Revenue, Credit: net, Description: "Invoice " + inv.InvoiceNo + " revenue"},
	}
	if inv.Tax.IsPositive() {
		lines = append(lines, dto.PostingLineRequest{
			AccountID:   accounts.TaxPayable,
			Credit:      inv.Tax,
			Description: "Invoice " + inv.InvoiceNo + " tax",
		})
	}
	return lines, nil
}
