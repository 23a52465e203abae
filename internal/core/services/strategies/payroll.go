package strategies

import (
	"fmt"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// EmployeePay is one employee's slice of a payroll run. Earnings add to the
// gross; deductions are withheld from it. Percent-based components resolve
// against the base salary.
type EmployeePay struct {
	EmployeeRef string
	BaseSalary  decimal.Decimal
	Earnings    []domain.EarningOrDeduction
	Deductions  []domain.EarningOrDeduction
}

// PayrollRun is the slice of a payroll run the posting strategy needs.
type PayrollRun struct {
	RunRef    string
	Employees []EmployeePay
}

// PayrollAccounts names the accounts a payroll posting touches.
type PayrollAccounts struct {
	SalaryExpense     string
	DeductionsPayable string
	WagesPayable      string
}

// BuildPayrollRunLines derives the posting lines for a payroll run: debit
// salary expense for the total gross, credit deductions payable for withheld
// amounts and wages payable for the net owed to employees. Every component is
// resolved to a concrete amount here, exactly once; percents are never
// recomputed at read time.
func BuildPayrollRunLines(run PayrollRun, accounts PayrollAccounts) ([]dto.PostingLineRequest, error) {
	if len(run.Employees) == 0 {
		return nil, fmt.Errorf("payroll run %s has no employees", run.RunRef)
	}

	totalGross := decimal.Zero
	totalDeductions := decimal.Zero

	for _, emp := range run.Employees {
		if !emp.BaseSalary.IsPositive() {
			return nil, fmt.Errorf("%w: employee %s base salary is %s", ErrNonPositiveAmount, emp.EmployeeRef, emp.BaseSalary)
		}

		gross := emp.BaseSalary
		for _, e := range emp.Earnings {
			amount, err := e.Resolve(emp.BaseSalary)
			if err != nil {
				return nil, fmt.Errorf("employee %s: %w", emp.EmployeeRef, err)
			}
			gross = gross.Add(amount)
		}

		withheld := decimal.Zero
		for _, d := range emp.Deductions {
			amount, err := d.Resolve(emp.BaseSalary)
			if err != nil {
				return nil, fmt.Errorf("employee %s: %w", emp.EmployeeRef, err)
			}
			withheld = withheld.Add(amount)
		}
		if withheld.GreaterThan(gross) {
			return nil, fmt.Errorf("employee %s deductions %s exceed gross %s", emp.EmployeeRef, withheld, gross)
		}

		totalGross = totalGross.Add(gross)
		totalDeductions = totalDeductions.Add(withheld)
	}

	net := totalGross.Sub(totalDeductions)
	desc := "Payroll run " + run.RunRef

	lines := []dto.PostingLineRequest{
		{AccountID: accounts.SalaryExpense, Debit: totalGross, Description: desc + " gross"},
	}
	if totalDeductions.IsPositive() {
		lines = append(lines, dto.PostingLineRequest{
			AccountID:   accounts.DeductionsPayable,
			Credit:      totalDeductions,
			Description: desc + " withholdings",
		})
	}
	lines = append(lines, dto.PostingLineRequest{
		AccountID:   accounts.WagesPayable,
		Credit:      net,
		Description: desc + " net pay",
	})
	return lines, nil
}
