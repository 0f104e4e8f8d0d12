package pgsql

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/SscSPs/customer_ledger_api/internal/testutil"
	"github.com/SscSPs/customer_ledger_api/internal/utils/pii"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PgsqlIntegrationSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func TestPgsqlIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PgsqlIntegrationSuite))
}

func (s *PgsqlIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pool = testutil.SetupTestPool(s.T())

	cipher, err := pii.NewCipher("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool, WithFieldCipher(cipher))
}

func (s *PgsqlIntegrationSuite) newCustomer() *domain.Customer {
	c, err := s.repos.CustomerRepo.SaveCustomer(s.ctx, testutil.NewCustomer())
	s.Require().NoError(err)
	return c
}

func (s *PgsqlIntegrationSuite) newAccount(customerID int64, balance string) *domain.Account {
	a, err := s.repos.AccountRepo.SaveAccount(s.ctx, testutil.NewAccount(customerID, balance))
	s.Require().NoError(err)
	return a
}

func (s *PgsqlIntegrationSuite) TestCustomerPIIIsEncryptedAtRest() {
	c := s.newCustomer()

	var storedSSN string
	err := s.pool.QueryRow(s.ctx, `SELECT ssn FROM customers WHERE id = $1`, c.CustomerID).Scan(&storedSSN)
	s.Require().NoError(err)
	s.NotEqual("123-45-6789", storedSSN)

	got, err := s.repos.CustomerRepo.FindCustomerByID(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Equal("123-45-6789", got.SSN)
	s.Equal("ada@example.com", got.Email)

	_, err = s.repos.CustomerRepo.FindCustomerByID(s.ctx, -1)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgsqlIntegrationSuite) TestAccountLifecycle() {
	c := s.newCustomer()
	a := s.newAccount(c.CustomerID, "100.50")
	s.True(a.OpeningBalance.Equal(decimal.RequireFromString("100.50")))

	dup := testutil.NewAccount(c.CustomerID, "1")
	dup.AccountNumber = a.AccountNumber
	_, err := s.repos.AccountRepo.SaveAccount(s.ctx, dup)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.repos.AccountRepo.SaveAccount(s.ctx, testutil.NewAccount(-5, "1"))
	s.ErrorIs(err, apperrors.ErrNotFound)

	a.Status = domain.StatusLocked
	s.Require().NoError(s.repos.AccountRepo.UpdateAccount(s.ctx, *a))
	got, err := s.repos.AccountRepo.FindAccount(s.ctx, c.CustomerID, a.AccountID)
	s.Require().NoError(err)
	s.Equal(domain.StatusLocked, got.Status)

	_, err = s.repos.AccountRepo.FindAccount(s.ctx, c.CustomerID+1000, a.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	list, err := s.repos.AccountRepo.ListAccountsByCustomer(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *PgsqlIntegrationSuite) TestUnitOfWork_CommitAndStaleVersion() {
	c := s.newCustomer()
	from := s.newAccount(c.CustomerID, "100")
	to := s.newAccount(c.CustomerID, "0")
	amount := decimal.RequireFromString("30")

	uow, err := s.repos.TxManager.Begin(s.ctx)
	s.Require().NoError(err)
	defer uow.Rollback(s.ctx)

	lf, err := uow.Accounts().GetForUpdate(s.ctx, c.CustomerID, from.AccountID)
	s.Require().NoError(err)
	lt, err := uow.Accounts().GetForUpdate(s.ctx, c.CustomerID, to.AccountID)
	s.Require().NoError(err)

	s.Require().NoError(uow.Accounts().CommitBalances(s.ctx, []domain.BalanceChange{
		{AccountID: lf.AccountID, NewBalance: lf.Balance.Sub(amount), ExpectedVersion: lf.Version},
		{AccountID: lt.AccountID, NewBalance: lt.Balance.Add(amount), ExpectedVersion: lt.Version},
	}))
	entries, err := uow.Ledger().Append(s.ctx, domain.TransferEntries(*lf, *lt, amount))
	s.Require().NoError(err)
	s.NotZero(entries[0].EntryID)
	s.Require().NoError(uow.Commit(s.ctx))

	got, err := s.repos.AccountRepo.FindAccount(s.ctx, c.CustomerID, from.AccountID)
	s.Require().NoError(err)
	s.True(got.Balance.Equal(decimal.RequireFromString("70")))
	s.Equal(int64(1), got.Version)

	ledger, err := s.repos.LedgerRepo.ListEntriesByAccount(s.ctx, to.AccountID, 0, 0)
	s.Require().NoError(err)
	s.Len(ledger, 1)

	stale, err := s.repos.TxManager.Begin(s.ctx)
	s.Require().NoError(err)
	defer stale.Rollback(s.ctx)
	err = stale.Accounts().CommitBalances(s.ctx, []domain.BalanceChange{
		{AccountID: from.AccountID, NewBalance: decimal.Zero, ExpectedVersion: 0},
	})
	s.ErrorIs(err, apperrors.ErrConcurrencyConflict)
}

func (s *PgsqlIntegrationSuite) TestUnitOfWork_RollbackLeavesNoTrace() {
	c := s.newCustomer()
	a := s.newAccount(c.CustomerID, "10")

	uow, err := s.repos.TxManager.Begin(s.ctx)
	s.Require().NoError(err)
	_, err = uow.Ledger().Append(s.ctx, []domain.LedgerEntry{
		{AccountID: a.AccountID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(1), Details: domain.CashDeposit},
	})
	s.Require().NoError(err)
	s.Require().NoError(uow.Rollback(s.ctx))
	s.NoError(uow.Rollback(s.ctx))

	ledger, err := s.repos.LedgerRepo.ListEntriesByAccount(s.ctx, a.AccountID, 0, 0)
	s.Require().NoError(err)
	s.Empty(ledger)
}

func (s *PgsqlIntegrationSuite) TestGetForUpdate_SerializesWriters() {
	c := s.newCustomer()
	a := s.newAccount(c.CustomerID, "100")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow, err := s.repos.TxManager.Begin(s.ctx)
			if err != nil {
				return
			}
			defer uow.Rollback(s.ctx)
			locked, err := uow.Accounts().GetForUpdate(s.ctx, c.CustomerID, a.AccountID)
			if err != nil {
				return
			}
			err = uow.Accounts().CommitBalances(s.ctx, []domain.BalanceChange{
				{AccountID: a.AccountID, NewBalance: locked.Balance.Sub(decimal.NewFromInt(1)), ExpectedVersion: locked.Version},
			})
			if err != nil {
				return
			}
			_ = uow.Commit(s.ctx)
		}()
	}
	wg.Wait()

	got, err := s.repos.AccountRepo.FindAccount(s.ctx, c.CustomerID, a.AccountID)
	s.Require().NoError(err)
	s.True(got.Balance.Equal(decimal.RequireFromString("90")))
	s.Equal(int64(10), got.Version)
}
