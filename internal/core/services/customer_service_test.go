package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/core/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *MockCustomerRepository
	service portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.repo)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer() {
	req := dto.CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", SSN: "123-45-6789", Active: true}
	suite.repo.On("SaveCustomer", suite.ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.FirstName == "Ada" && c.SSN == "123-45-6789" && c.Active
	})).Return(&domain.Customer{CustomerID: 1, FirstName: "Ada"}, nil).Once()

	c, err := suite.service.CreateCustomer(suite.ctx, req)
	suite.Require().NoError(err)
	suite.Equal(int64(1), c.CustomerID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	suite.repo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{CustomerID: 1, FirstName: "Ada", LastName: "Lovelace", Active: true}, nil).Once()
	suite.repo.On("UpdateCustomer", suite.ctx, domain.Customer{CustomerID: 1, FirstName: "Ada", LastName: "King", Active: false}).Return(nil).Once()

	last, inactive := "King", false
	c, err := suite.service.UpdateCustomer(suite.ctx, 1, dto.UpdateCustomerRequest{LastName: &last, Active: &inactive})
	suite.Require().NoError(err)
	suite.Equal("King", c.LastName)
	suite.False(c.Active)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	suite.repo.On("FindCustomerByID", suite.ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCustomer(suite.ctx, 5, dto.UpdateCustomerRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestListCustomers() {
	suite.repo.On("ListCustomers", suite.ctx).Return([]domain.Customer{{CustomerID: 1}}, nil).Once()

	list, err := suite.service.ListCustomers(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(list, 1)
}
