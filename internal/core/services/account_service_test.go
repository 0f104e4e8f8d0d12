package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/core/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  *MockAccountRepository
	customerRepo *MockCustomerRepository
	service      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.accountRepo = new(MockAccountRepository)
	suite.customerRepo = new(MockCustomerRepository)
	suite.service = services.NewAccountService(suite.accountRepo, suite.customerRepo)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) customerExists() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, testCustomerID).Return(&domain.Customer{CustomerID: testCustomerID}, nil).Once()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.customerExists()
	req := dto.CreateAccountRequest{
		AccountType:   domain.Savings,
		Balance:       decimal.RequireFromString("25.50"),
		AccountNumber: "000123",
		RoutingNumber: "021000021",
		Status:        domain.StatusOpened,
		Active:        true,
	}
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.CustomerID == testCustomerID && a.OpeningBalance.Equal(req.Balance) && a.Balance.Equal(req.Balance)
	})).Return(&domain.Account{AccountID: 1, CustomerID: testCustomerID, Balance: req.Balance}, nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, testCustomerID, req)
	suite.Require().NoError(err)
	suite.Equal(int64(1), created.AccountID)
	suite.accountRepo.AssertExpectations(suite.T())
	suite.customerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CustomerNotFound() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, testCustomerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(suite.ctx, testCustomerID, dto.CreateAccountRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidFields() {
	suite.customerExists()

	_, err := suite.service.CreateAccount(suite.ctx, testCustomerID, dto.CreateAccountRequest{
		AccountType:   "brokerage",
		AccountNumber: "1",
		Status:        domain.StatusOpened,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	suite.customerExists()
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(suite.ctx, testCustomerID, dto.CreateAccountRequest{
		AccountType:   domain.Checking,
		AccountNumber: "1",
		Status:        domain.StatusOpened,
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	suite.customerExists()
	suite.accountRepo.On("ListAccountsByCustomer", suite.ctx, testCustomerID).Return([]domain.Account{{AccountID: 1}, {AccountID: 2}}, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, testCustomerID)
	suite.Require().NoError(err)
	suite.Len(accounts, 2)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_AppliesFieldsAndRereads() {
	suite.customerExists()
	existing := &domain.Account{
		AccountID: 3, CustomerID: testCustomerID, AccountType: domain.Checking,
		AccountNumber: "1", Status: domain.StatusOpened, Active: true, Balance: decimal.NewFromInt(10),
	}
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(3)).Return(existing, nil).Once()
	suite.accountRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Status == domain.StatusClosed
	})).Return(nil).Once()
	updated := *existing
	updated.Status = domain.StatusClosed
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(3)).Return(&updated, nil).Once()

	closed := domain.StatusClosed
	got, err := suite.service.UpdateAccount(suite.ctx, testCustomerID, 3, dto.UpdateAccountRequest{Status: &closed})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusClosed, got.Status)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	suite.customerExists()
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccount(suite.ctx, testCustomerID, 9)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
