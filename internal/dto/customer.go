package dto

import (
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
)

// CreateCustomerForm holds the raw form values for registering a customer.
type CreateCustomerForm struct {
	FirstName   Param `form:"first_name" json:"first_name" binding:"required"`
	LastName    Param `form:"last_name" json:"last_name" binding:"required"`
	PhoneNumber Param `form:"phone_number" json:"phone_number" binding:"required,max=32"`
	Email       Param `form:"email" json:"email" binding:"required,email"`
	SSN         Param `form:"ssn" json:"ssn" binding:"required,ssn"`
	Active      Param `form:"active" json:"active" binding:"required"`
}

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	SSN         string
	Active      bool
}

// Parse converts the form into a typed request.
func (f CreateCustomerForm) Parse() (CreateCustomerRequest, error) {
	active, err := ParseBool("active", string(f.Active))
	if err != nil {
		return CreateCustomerRequest{}, err
	}
	return CreateCustomerRequest{
		FirstName:   string(f.FirstName),
		LastName:    string(f.LastName),
		PhoneNumber: string(f.PhoneNumber),
		Email:       string(f.Email),
		SSN:         string(f.SSN),
		Active:      active,
	}, nil
}

// UpdateCustomerForm holds optional customer fields.
type UpdateCustomerForm struct {
	FirstName   *Param `form:"first_name" json:"first_name" binding:"omitempty,min=1"`
	LastName    *Param `form:"last_name" json:"last_name" binding:"omitempty,min=1"`
	PhoneNumber *Param `form:"phone_number" json:"phone_number" binding:"omitempty,min=1,max=32"`
	Email       *Param `form:"email" json:"email" binding:"omitempty,email"`
	SSN         *Param `form:"ssn" json:"ssn" binding:"omitempty,ssn"`
	Active      *Param `form:"active" json:"active"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	SSN         *string
	Active      *bool
}

// Parse converts the form into a typed request.
func (f UpdateCustomerForm) Parse() (UpdateCustomerRequest, error) {
	active, err := parseOptionalBool("active", optString(f.Active))
	if err != nil {
		return UpdateCustomerRequest{}, err
	}
	return UpdateCustomerRequest{
		FirstName:   optString(f.FirstName),
		LastName:    optString(f.LastName),
		PhoneNumber: optString(f.PhoneNumber),
		Email:       optString(f.Email),
		SSN:         optString(f.SSN),
		Active:      active,
	}, nil
}

// Apply copies the provided fields onto customer.
func (r UpdateCustomerRequest) Apply(customer *domain.Customer) {
	if r.FirstName != nil {
		customer.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		customer.LastName = *r.LastName
	}
	if r.PhoneNumber != nil {
		customer.PhoneNumber = *r.PhoneNumber
	}
	if r.Email != nil {
		customer.Email = *r.Email
	}
	if r.SSN != nil {
		customer.SSN = *r.SSN
	}
	if r.Active != nil {
		customer.Active = *r.Active
	}
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	SSN         string    `json:"ssn"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
// The SSN is masked to its last four digits.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		SSN:         maskSSN(c.SSN),
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

func maskSSN(ssn string) string {
	if len(ssn) < 4 {
		return "***-**-****"
	}
	return "***-**-" + ssn[len(ssn)-4:]
}
