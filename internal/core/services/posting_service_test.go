package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/core/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/atlaserp/ledger_engine/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockEntryRepo     *MockEntryRepository
	mockLinkRepo      *MockPostingLinkRepository
	mockValidationSvc *MockValidationService
	mockAuditSvc      *MockAuditService
	service           portssvc.PostingSvcFacade
	tenantID          string
	actorID           string
	cashAccountID     string
	revenueAccountID  string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockLinkRepo = new(MockPostingLinkRepository)
	suite.mockValidationSvc = new(MockValidationService)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewPostingService(suite.mockEntryRepo, suite.mockLinkRepo, suite.mockValidationSvc, suite.mockAuditSvc)

	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.cashAccountID = uuid.NewString()
	suite.revenueAccountID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) balancedRequest() dto.PostingRequest {
	return dto.PostingRequest{
		SourceType:  "sales_invoice",
		SourceID:    uuid.NewString(),
		PostingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo:        "Invoice INV-42",
		Lines: []dto.PostingLineRequest{
			{AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccountID, Credit: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestPost_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockValidationSvc.On("Validate", ctx, suite.tenantID, req.PostingDate, mock.AnythingOfType("[]domain.JournalLine")).
		Return([]domain.Violation{}, nil).Once()

	var persisted domain.JournalEntry
	var persistedLines []domain.JournalLine
	var persistedLink domain.PostingLink
	suite.mockEntryRepo.On("CreateEntryWithLines", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.AnythingOfType("domain.PostingLink")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.JournalEntry)
			persistedLines = args.Get(2).([]domain.JournalLine)
			persistedLink = args.Get(3).(domain.PostingLink)
		}).
		Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, mock.AnythingOfType("domain.AuditEvent")).Return().Once()

	result, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Success)
	suite.False(result.Idempotent)
	suite.NotEmpty(result.JournalEntryID)

	suite.Equal(domain.Posted, persisted.Status)
	suite.Equal(suite.tenantID, persisted.TenantID)
	suite.Equal(suite.actorID, persisted.PostedBy)
	suite.Equal(result.JournalEntryID, persisted.EntryID)
	suite.True(accounting.IsBalanced(persistedLines))
	for i, l := range persistedLines {
		suite.Equal(persisted.EntryID, l.EntryID)
		suite.Equal(i+1, l.LineNo)
		suite.NotEmpty(l.LineID)
	}
	suite.Equal(persisted.EntryID, persistedLink.EntryID)
	suite.False(persistedLink.Reversed)

	suite.mockLinkRepo.AssertExpectations(suite.T())
	suite.mockValidationSvc.AssertExpectations(suite.T())
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockAuditSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPost_ReservedSourceType() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.SourceType = domain.SourceTypeReversal

	_, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLinkRepo.AssertNotCalled(suite.T(), "FindActiveLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntryWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_ValidationViolations() {
	ctx := context.Background()
	req := suite.balancedRequest()
	violations := []domain.Violation{
		{Kind: domain.ViolationImbalanced, Message: "debits total 100 but credits total 90"},
	}

	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockValidationSvc.On("Validate", ctx, suite.tenantID, req.PostingDate, mock.AnythingOfType("[]domain.JournalLine")).
		Return(violations, nil).Once()

	_, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var valErr *services.ValidationError
	suite.Require().ErrorAs(err, &valErr)
	suite.Equal(violations, valErr.Violations)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntryWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAuditSvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_IdempotentRetry() {
	ctx := context.Background()
	req := suite.balancedRequest()
	entryID := uuid.NewString()
	link := &domain.PostingLink{
		LinkID:     uuid.NewString(),
		TenantID:   suite.tenantID,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
		EntryID:    entryID,
	}
	// Same accounts and amounts as the request, committed under other line IDs.
	committedLines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 1, AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 2, AccountID: suite.revenueAccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}

	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(link, nil).Once()
	suite.mockEntryRepo.On("FindLinesByEntryID", ctx, entryID).Return(committedLines, nil).Once()

	result, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.True(result.Idempotent)
	suite.Equal(entryID, result.JournalEntryID)
	suite.mockValidationSvc.AssertNotCalled(suite.T(), "Validate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntryWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAuditSvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_SameSourceDifferentLines() {
	ctx := context.Background()
	req := suite.balancedRequest()
	entryID := uuid.NewString()
	link := &domain.PostingLink{
		LinkID:     uuid.NewString(),
		TenantID:   suite.tenantID,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
		EntryID:    entryID,
	}
	// Committed with a different amount than the retry carries.
	committedLines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 1, AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(250), Credit: decimal.Zero},
		{LineID: uuid.NewString(), EntryID: entryID, LineNo: 2, AccountID: suite.revenueAccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(250)},
	}

	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(link, nil).Once()
	suite.mockEntryRepo.On("FindLinesByEntryID", ctx, entryID).Return(committedLines, nil).Once()

	_, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSourceAlreadyPosted)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntryWithLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPost_LostInsertRaceResolvesIdempotently() {
	ctx := context.Background()
	req := suite.balancedRequest()
	winnerEntryID := uuid.NewString()
	winnerLink := &domain.PostingLink{
		LinkID:     uuid.NewString(),
		TenantID:   suite.tenantID,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
		EntryID:    winnerEntryID,
	}
	winnerLines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: winnerEntryID, LineNo: 1, AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{LineID: uuid.NewString(), EntryID: winnerEntryID, LineNo: 2, AccountID: suite.revenueAccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}

	// No link at pre-check time, then the concurrent insert wins the unique
	// constraint race, then the committed link is visible on re-read.
	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockValidationSvc.On("Validate", ctx, suite.tenantID, req.PostingDate, mock.AnythingOfType("[]domain.JournalLine")).
		Return([]domain.Violation{}, nil).Once()
	suite.mockEntryRepo.On("CreateEntryWithLines", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.AnythingOfType("domain.PostingLink")).
		Return(fmt.Errorf("%w: posting link for %s:%s", apperrors.ErrDuplicate, req.SourceType, req.SourceID)).Once()
	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(winnerLink, nil).Once()
	suite.mockEntryRepo.On("FindLinesByEntryID", ctx, winnerEntryID).Return(winnerLines, nil).Once()

	result, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.True(result.Idempotent)
	suite.Equal(winnerEntryID, result.JournalEntryID)
	suite.mockAuditSvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
	suite.mockLinkRepo.AssertExpectations(suite.T())
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPost_RepositoryFailure() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockLinkRepo.On("FindActiveLink", ctx, suite.tenantID, req.SourceType, req.SourceID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockValidationSvc.On("Validate", ctx, suite.tenantID, req.PostingDate, mock.AnythingOfType("[]domain.JournalLine")).
		Return([]domain.Violation{}, nil).Once()
	suite.mockEntryRepo.On("CreateEntryWithLines", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.AnythingOfType("domain.PostingLink")).
		Return(fmt.Errorf("connection reset")).Once()

	_, err := suite.service.Post(ctx, suite.tenantID, suite.actorID, req)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "failed to persist journal entry")
	suite.mockAuditSvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
