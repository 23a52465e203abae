package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
)

// ValidationError carries the full violation list of a failed pre-posting
// check so callers can surface the specific failures, not a generic error.
type ValidationError struct {
	Violations []domain.Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Kind, v.Message)
	}
	return "posting validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return apperrors.ErrValidation }

// validationService runs the pre-posting checks on candidate line sets.
type validationService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewValidationService creates the validation gate.
func NewValidationService(accountRepo portsrepo.AccountRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.ValidationSvcFacade {
	return &validationService{
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
	}
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

// Validate runs every check and returns the full violation list; an empty list
// means the lines may be posted. The returned error is reserved for
// infrastructure failures (the checks themselves never error).
func (s *validationService) Validate(ctx context.Context, tenantID string, postingDate time.Time, lines []domain.JournalLine) ([]domain.Violation, error) {
	violations := []domain.Violation{}

	if len(lines) < 2 {
		violations = append(violations, domain.Violation{
			Kind:    domain.ViolationImbalanced,
			Message: fmt.Sprintf("entry must have at least two lines, got %d", len(lines)),
		})
	}

	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			violations = append(violations, domain.Violation{
				Kind:    domain.ViolationImbalanced,
				Message: fmt.Sprintf("line %d has a negative amount", l.LineNo),
			})
		}
		// A line carries one side only; both sides at zero is a tolerated
		// placeholder.
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			violations = append(violations, domain.Violation{
				Kind:    domain.ViolationImbalanced,
				Message: fmt.Sprintf("line %d has amounts on both debit and credit sides", l.LineNo),
			})
		}
	}

	debits, credits := accounting.Totals(lines)
	if debits.Sub(credits).Abs().GreaterThan(accounting.Tolerance) {
		violations = append(violations, domain.Violation{
			Kind:    domain.ViolationImbalanced,
			Message: fmt.Sprintf("debits total %s but credits total %s", debits.String(), credits.String()),
		})
	}

	accountViolations, err := s.checkAccounts(ctx, tenantID, lines)
	if err != nil {
		return nil, err
	}
	violations = append(violations, accountViolations...)

	closed, err := s.periodRepo.IsDateClosed(ctx, tenantID, postingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check period lock: %w", err)
	}
	if closed {
		violations = append(violations, domain.Violation{
			Kind:    domain.ViolationClosedPeriod,
			Message: fmt.Sprintf("posting date %s is in a closed accounting period", postingDate.Format("2006-01-02")),
		})
	}

	return violations, nil
}

// checkAccounts verifies every referenced account exists for the tenant and is
// active.
func (s *validationService) checkAccounts(ctx context.Context, tenantID string, lines []domain.JournalLine) ([]domain.Violation, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.AccountID == "" {
			continue
		}
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for validation: %w", err)
	}

	violations := []domain.Violation{}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			violations = append(violations, domain.Violation{
				Kind:    domain.ViolationUnknownAccount,
				Message: fmt.Sprintf("account %s does not exist", id),
			})
			continue
		}
		if !acc.IsActive {
			violations = append(violations, domain.Violation{
				Kind:    domain.ViolationInactiveAccount,
				Message: fmt.Sprintf("account %s (%s) is inactive", acc.Code, id),
			})
		}
	}
	return violations, nil
}
