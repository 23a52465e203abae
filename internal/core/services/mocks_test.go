package services_test

import (
	"context"
	"time"

	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portsrepo "github.com/atlaserp/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) CreateEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink) error {
	args := m.Called(ctx, entry, lines, link)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockEntryRepository) ReverseEntry(ctx context.Context, original domain.JournalEntry, reversal domain.JournalEntry, lines []domain.JournalLine, link domain.PostingLink, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, original, reversal, lines, link, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock PostingLinkRepository ---
type MockPostingLinkRepository struct {
	mock.Mock
}

var _ portsrepo.PostingLinkRepositoryFacade = (*MockPostingLinkRepository)(nil)

func (m *MockPostingLinkRepository) FindActiveLink(ctx context.Context, tenantID, sourceType, sourceID string) (*domain.PostingLink, error) {
	args := m.Called(ctx, tenantID, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingLink), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, tenantID, accountID string, updatedBy string) error {
	args := m.Called(ctx, tenantID, accountID, updatedBy)
	return args.Error(0)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context, tenantID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) IsDateClosed(ctx context.Context, tenantID string, date time.Time) (bool, error) {
	args := m.Called(ctx, tenantID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeriodRepository) ClosePeriod(ctx context.Context, tenantID, periodID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, periodID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumAccountAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (portsrepo.AccountTotals, error) {
	args := m.Called(ctx, tenantID, accountID, asOf)
	return args.Get(0).(portsrepo.AccountTotals), args.Error(1)
}

func (m *MockReportingRepository) SumAccountsForRange(ctx context.Context, tenantID string, accountIDs []string, from, to time.Time) (map[string]portsrepo.AccountTotals, error) {
	args := m.Called(ctx, tenantID, accountIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]portsrepo.AccountTotals), args.Error(1)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveEvent(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) ListEventsByEntity(ctx context.Context, tenantID, entityType, entityID string, limit int, nextToken *string) ([]domain.AuditEvent, *string, error) {
	args := m.Called(ctx, tenantID, entityType, entityID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.AuditEvent), returnedNextToken, args.Error(2)
}

// --- Mock ValidationService ---
type MockValidationService struct {
	mock.Mock
}

var _ portssvc.ValidationSvcFacade = (*MockValidationService)(nil)

func (m *MockValidationService) Validate(ctx context.Context, tenantID string, postingDate time.Time, lines []domain.JournalLine) ([]domain.Violation, error) {
	args := m.Called(ctx, tenantID, postingDate, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Violation), args.Error(1)
}

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

func (m *MockAuditService) Record(ctx context.Context, event domain.AuditEvent) {
	m.Called(ctx, event)
}

func (m *MockAuditService) ListForEntity(ctx context.Context, tenantID, entityType, entityID string, params dto.ListAuditEventsParams) (*dto.ListAuditEventsResponse, error) {
	args := m.Called(ctx, tenantID, entityType, entityID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditEventsResponse), args.Error(1)
}
