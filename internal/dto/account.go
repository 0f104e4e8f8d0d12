package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/SscSPs/customer_ledger_api/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateAccountForm holds the raw form values for opening an account.
type CreateAccountForm struct {
	AccountType   Param `form:"account_type" json:"account_type" binding:"required,oneof=checking savings mortgage retirement investing"`
	Balance       Param `form:"balance" json:"balance" binding:"required"`
	AccountNumber Param `form:"account_number" json:"account_number" binding:"required,max=34"`
	RoutingNumber Param `form:"routing_number" json:"routing_number" binding:"required,max=34"`
	Status        Param `form:"status" json:"status" binding:"required,oneof=opened closed locked abandoned"`
	Active        Param `form:"active" json:"active" binding:"required"`
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountType   domain.AccountType
	Balance       decimal.Decimal
	AccountNumber string
	RoutingNumber string
	Status        domain.AccountStatus
	Active        bool
}

// Parse converts the form into a typed request.
func (f CreateAccountForm) Parse() (CreateAccountRequest, error) {
	balance, err := ParseBalance(string(f.Balance))
	if err != nil {
		return CreateAccountRequest{}, err
	}
	active, err := ParseBool("active", string(f.Active))
	if err != nil {
		return CreateAccountRequest{}, err
	}
	return CreateAccountRequest{
		AccountType:   domain.AccountType(f.AccountType),
		Balance:       balance,
		AccountNumber: string(f.AccountNumber),
		RoutingNumber: string(f.RoutingNumber),
		Status:        domain.AccountStatus(f.Status),
		Active:        active,
	}, nil
}

// UpdateAccountForm holds optional account fields. Balance is accepted only to be
// rejected: balances change through transfers, never through field updates.
type UpdateAccountForm struct {
	AccountType   *Param `form:"account_type" json:"account_type" binding:"omitempty,oneof=checking savings mortgage retirement investing"`
	Balance       *Param `form:"balance" json:"balance"`
	AccountNumber *Param `form:"account_number" json:"account_number" binding:"omitempty,min=1,max=34"`
	RoutingNumber *Param `form:"routing_number" json:"routing_number" binding:"omitempty,min=1,max=34"`
	Status        *Param `form:"status" json:"status" binding:"omitempty,oneof=opened closed locked abandoned"`
	Active        *Param `form:"active" json:"active"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	AccountType   *domain.AccountType
	AccountNumber *string
	RoutingNumber *string
	Status        *domain.AccountStatus
	Active        *bool
}

// Parse converts the form into a typed request.
func (f UpdateAccountForm) Parse() (UpdateAccountRequest, error) {
	if f.Balance != nil {
		return UpdateAccountRequest{}, fmt.Errorf("%w: balance cannot be updated directly", apperrors.ErrValidation)
	}
	active, err := parseOptionalBool("active", optString(f.Active))
	if err != nil {
		return UpdateAccountRequest{}, err
	}
	req := UpdateAccountRequest{
		AccountNumber: optString(f.AccountNumber),
		RoutingNumber: optString(f.RoutingNumber),
		Active:        active,
	}
	if f.AccountType != nil {
		t := domain.AccountType(*f.AccountType)
		req.AccountType = &t
	}
	if f.Status != nil {
		s := domain.AccountStatus(*f.Status)
		req.Status = &s
	}
	return req, nil
}

// Apply copies the provided fields onto account.
func (r UpdateAccountRequest) Apply(account *domain.Account) {
	if r.AccountType != nil {
		account.AccountType = *r.AccountType
	}
	if r.AccountNumber != nil {
		account.AccountNumber = *r.AccountNumber
	}
	if r.RoutingNumber != nil {
		account.RoutingNumber = *r.RoutingNumber
	}
	if r.Status != nil {
		account.Status = *r.Status
	}
	if r.Active != nil {
		account.Active = *r.Active
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64                `json:"id"`
	CustomerID    int64                `json:"customer_id"`
	AccountType   domain.AccountType   `json:"account_type"`
	Balance       string               `json:"balance"`
	AccountNumber string               `json:"account_number"`
	RoutingNumber string               `json:"routing_number"`
	Status        domain.AccountStatus `json:"status"`
	Active        bool                 `json:"active"`
	CreatedAt     time.Time            `json:"created_at"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		CustomerID:    acc.CustomerID,
		AccountType:   acc.AccountType,
		Balance:       utils.FormatAmount(acc.Balance),
		AccountNumber: acc.AccountNumber,
		RoutingNumber: acc.RoutingNumber,
		Status:        acc.Status,
		Active:        acc.Active,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
