package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingParameter indicates that a required request parameter was absent.
var ErrMissingParameter = errors.New("missing parameter")

// ErrInvalidAmount indicates a non-positive or malformed monetary amount.
var ErrInvalidAmount = errors.New("amount must be a positive decimal with at most two fractional digits")

// ErrInvalidTransfer indicates a structurally invalid transfer (e.g. same source and destination).
// It wraps ErrValidation so callers that only care about client errors can match either.
var ErrInvalidTransfer = fmt.Errorf("%w: invalid transfer", ErrValidation)

// ErrInsufficientFunds indicates the source account balance is lower than the transfer amount.
var ErrInsufficientFunds = errors.New("insufficient funds in from account")

// ErrAccountNotTransferable indicates an account that is not opened and active.
var ErrAccountNotTransferable = errors.New("both to and from accounts must be opened and active")

// ErrConcurrencyConflict indicates a version mismatch or lock conflict while committing.
// It is retried by the transfer engine and only escapes wrapped in ErrInternal.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ErrForbidden indicates the caller may not act on the requested customer.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates a storage or unexpected failure. Never shown to callers verbatim.
var ErrInternal = errors.New("internal failure")
