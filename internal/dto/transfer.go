package dto

import (
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/SscSPs/customer_ledger_api/internal/utils"
	"github.com/shopspring/decimal"
)

// TransferForm holds the raw transfer parameters as sent in a form, query string or JSON body.
// Values stay strings until Parse so that nothing is silently coerced and a
// missing field is reported as a missing parameter.
type TransferForm struct {
	ToAccountID   Param `form:"to_account_id" json:"to_account_id"`
	FromAccountID Param `form:"from_account_id" json:"from_account_id"`
	Amount        Param `form:"amount" json:"amount"`
}

// TransferRequest is a strictly typed transfer request.
type TransferRequest struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
}

// Parse converts the form into a TransferRequest. The amount is checked first
// so a non-positive amount is reported regardless of the account ids.
func (f TransferForm) Parse() (TransferRequest, error) {
	amount, err := ParseAmount(string(f.Amount))
	if err != nil {
		return TransferRequest{}, err
	}
	fromID, err := ParseID("from_account_id", string(f.FromAccountID))
	if err != nil {
		return TransferRequest{}, err
	}
	toID, err := ParseID("to_account_id", string(f.ToAccountID))
	if err != nil {
		return TransferRequest{}, err
	}
	return TransferRequest{FromAccountID: fromID, ToAccountID: toID, Amount: amount}, nil
}

// TransferResponse is the body returned after a committed transfer.
type TransferResponse struct {
	ToAccount   int64  `json:"to_account"`
	FromAccount int64  `json:"from_account"`
	Amount      string `json:"amount"`
}

// ToTransferResponse converts a receipt into its response body.
func ToTransferResponse(r *domain.TransferReceipt) TransferResponse {
	return TransferResponse{
		ToAccount:   r.ToAccountID,
		FromAccount: r.FromAccountID,
		Amount:      utils.FormatAmount(r.Amount),
	}
}

// Merge fills the fields f leaves empty from other.
func (f TransferForm) Merge(other TransferForm) TransferForm {
	if f.ToAccountID == "" {
		f.ToAccountID = other.ToAccountID
	}
	if f.FromAccountID == "" {
		f.FromAccountID = other.FromAccountID
	}
	if f.Amount == "" {
		f.Amount = other.Amount
	}
	return f
}
