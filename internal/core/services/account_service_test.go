package services_test

import (
	"context"
	"testing"

	"github.com/atlaserp/ledger_engine/internal/apperrors"
	"github.com/atlaserp/ledger_engine/internal/core/domain"
	portssvc "github.com/atlaserp/ledger_engine/internal/core/ports/services"
	"github.com/atlaserp/ledger_engine/internal/core/services"
	"github.com/atlaserp/ledger_engine/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockAuditSvc    *MockAuditService
	service         portssvc.AccountSvcFacade
	tenantID        string
	actorID         string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockAuditSvc)

	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Account) }).
		Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, mock.AnythingOfType("domain.AuditEvent")).Return().Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.tenantID, account.TenantID)
	suite.Equal("1000", account.Code)
	suite.True(account.IsActive)
	suite.Equal(suite.actorID, account.CreatedBy)
	suite.Equal(account.AccountID, saved.AccountID)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockAuditSvc.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "SAVINGS"}

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentTypeMismatch() {
	ctx := context.Background()
	parent := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, AccountType: domain.Liability, IsActive: true}
	req := dto.CreateAccountRequest{Code: "1100", Name: "Receivables", AccountType: domain.Asset, ParentAccountID: parent.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, parent.AccountID).
		Return(parent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingParent() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1100", Name: "Receivables", AccountType: domain.Asset, ParentAccountID: parentID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, parentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAuditSvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_DefaultLimit() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, 50, 0).
		Return([]domain.Account{}, nil).Once()

	_, err := suite.service.ListAccounts(ctx, suite.tenantID, 0, 0)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
