package errs

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrActiveFine = errors.New("user has an active fine")
	ErrLoanLimit  = errors.New("open loan limit reached")
	ErrCopyLent   = errors.New("book copy is already lent")
	ErrLoanDays   = errors.New("loanDays must be positive")

	ErrClosedLoan   = errors.New("loan is already closed")
	ErrDateBackward = errors.New("expected return date may only move forward")

	ErrFineNotPayable  = errors.New("fine is not payable")
	ErrFineAmount      = errors.New("monetary fine requires a positive amount")
	ErrLateFeeTypeGone = errors.New("late fee fine type is not configured")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
