package dto

import (
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/SscSPs/customer_ledger_api/internal/utils"
)

// ListLedgerParams defines query parameters for reading an account's ledger.
// A zero Limit returns the whole ledger in one page.
type ListLedgerParams struct {
	Limit     int     `form:"limit,default=0" binding:"min=0,max=1000"`
	NextToken *string `form:"next_token"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID         int64                  `json:"id"`
	AccountID       int64                  `json:"account_id"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	Amount          string                 `json:"amount"`
	Details         domain.EntryDetails    `json:"details"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ListLedgerResponse wraps one page of ledger entries.
type ListLedgerResponse struct {
	Entries   []LedgerEntryResponse
	NextToken *string // nil on the last page
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		AccountID:       e.AccountID,
		TransactionType: e.TransactionType,
		Amount:          utils.FormatAmount(e.Amount),
		Details:         e.Details,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of entries, never returning nil so an
// empty ledger renders as [].
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(&e)
	}
	return res
}
