package services

import (
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
)

// NewServicesContainer wires the engine's services over the repository provider.
func NewServicesContainer(repos portsrepo.RepositoryProvider) portssvc.ServicesContainer {
	auditSvc := NewAuditService(repos.AuditRepo)
	validationSvc := NewValidationService(repos.AccountRepo, repos.PeriodRepo)

	return portssvc.ServicesContainer{
		Posting:  NewPostingService(repos.EntryRepo, repos.PostingLinkRepo, validationSvc, auditSvc),
		Reversal: NewReversalService(repos.EntryRepo, repos.AccountRepo, repos.PeriodRepo, auditSvc),
		Ledger:   NewLedgerService(repos.EntryRepo),
		Balance:  NewBalanceService(repos.AccountRepo, repos.ReportingRepo),
		Account:  NewAccountService(repos.AccountRepo, auditSvc),
		Period:   NewPeriodService(repos.PeriodRepo, auditSvc),
		Audit:    auditSvc,
	}
}
