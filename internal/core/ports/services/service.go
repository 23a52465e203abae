package services

// ServicesContainer bundles the service facades for handler wiring.
type ServicesContainer struct {
	Posting  PostingSvcFacade
	Reversal ReversalSvcFacade
	Ledger   LedgerSvcFacade
	Balance  BalanceSvcFacade
	Account  AccountSvcFacade
	Period   PeriodSvcFacade
	Audit    AuditSvcFacade
}
