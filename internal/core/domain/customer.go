package domain

import "time"

// Customer owns zero or more accounts. Every string field except the id is PII
// and is stored encrypted by the postgres adapter.
type Customer struct {
	CustomerID  int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	SSN         string    `json:"ssn"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
