package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/core/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/SscSPs/customer_ledger_api/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	accountRepo *MockAccountRepository
	ledgerRepo  *MockLedgerRepository
	txManager   *MockTransactionManager
	uow         *MockUnitOfWork
	service     portssvc.LedgerReaderSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.accountRepo = new(MockAccountRepository)
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.txManager = new(MockTransactionManager)
	suite.uow = new(MockUnitOfWork)
	suite.service = services.NewLedgerService(suite.accountRepo, suite.ledgerRepo, suite.txManager)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func entry(id int64, tt domain.TransactionType, amt string) domain.LedgerEntry {
	return domain.LedgerEntry{EntryID: id, AccountID: 1, TransactionType: tt, Amount: decimal.RequireFromString(amt)}
}

func (suite *LedgerServiceTestSuite) TestGetLedger_EmptyRendersEmptySlice() {
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(1)).Return(account(1, "0"), nil).Once()
	suite.ledgerRepo.On("ListEntriesByAccount", suite.ctx, int64(1), int64(0), 0).Return([]domain.LedgerEntry{}, nil).Once()

	resp, err := suite.service.GetLedger(suite.ctx, testCustomerID, 1, dto.ListLedgerParams{})
	suite.Require().NoError(err)
	suite.NotNil(resp.Entries)
	suite.Empty(resp.Entries)
	suite.Nil(resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_PageWithNextToken() {
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(1)).Return(account(1, "0"), nil).Once()
	suite.ledgerRepo.On("ListEntriesByAccount", suite.ctx, int64(1), int64(4), 3).Return([]domain.LedgerEntry{
		entry(5, domain.Credit, "1"), entry(6, domain.Debit, "1"), entry(7, domain.Credit, "1"),
	}, nil).Once()

	token := pagination.EncodeCursorToken(1, 4)
	resp, err := suite.service.GetLedger(suite.ctx, testCustomerID, 1, dto.ListLedgerParams{Limit: 2, NextToken: &token})
	suite.Require().NoError(err)
	suite.Len(resp.Entries, 2)
	suite.Require().NotNil(resp.NextToken)

	after, err := pagination.DecodeCursorToken(*resp.NextToken, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(6), after)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_ForeignTokenRejected() {
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(1)).Return(account(1, "0"), nil).Once()

	token := pagination.EncodeCursorToken(2, 4)
	_, err := suite.service.GetLedger(suite.ctx, testCustomerID, 1, dto.ListLedgerParams{NextToken: &token})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_AccountNotFound() {
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLedger(suite.ctx, testCustomerID, 1, dto.ListLedgerParams{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestReconcile_ReadsUnderLock() {
	unlocked := account(1, "75")
	locked := account(1, "75")
	locked.OpeningBalance = decimal.NewFromInt(100)
	suite.accountRepo.On("FindAccount", suite.ctx, testCustomerID, int64(1)).Return(unlocked, nil).Once()
	suite.txManager.On("Begin", suite.ctx).Return(suite.uow, nil).Once()
	suite.uow.On("GetForUpdate", suite.ctx, testCustomerID, int64(1)).Return(locked, nil).Once()
	suite.ledgerRepo.On("ListEntriesByAccount", suite.ctx, int64(1), int64(0), 0).Return([]domain.LedgerEntry{
		entry(1, domain.Debit, "50"), entry(2, domain.Credit, "25"),
	}, nil).Once()
	suite.uow.On("Rollback", suite.ctx).Return(nil).Once()

	r, err := suite.service.Reconcile(suite.ctx, testCustomerID, 1)
	suite.Require().NoError(err)
	suite.True(r.Consistent)
	suite.Equal(2, r.EntryCount)
	suite.uow.AssertExpectations(suite.T())
	suite.uow.AssertNotCalled(suite.T(), "Commit", suite.ctx)
}
