package service

import (
	"context"
	"time"

	"github.com/libress/lending-service/internal/errs"
	"github.com/libress/lending-service/internal/events"
	"github.com/libress/lending-service/internal/model"
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Borrow opens a loan for loanDays counted from today. Eligibility is
// probed up front for a fast failure and re-checked inside the borrow
// transaction under the user row lock.
func (s *Service) Borrow(ctx context.Context, req model.BorrowRequest) (model.Loan, error) {
	if req.LoanDays <= 0 {
		return model.Loan{}, errs.ErrLoanDays
	}

	ok, err := s.CanBorrow(ctx, req.Username)
	if err != nil {
		return model.Loan{}, err
	}
	if !ok {
		return model.Loan{}, errs.ErrActiveFine
	}

	loanDate := dateOnly(s.now())
	expected := loanDate.AddDate(0, 0, req.LoanDays)

	loan, err := s.repo.CreateLoan(ctx, req.Username, req.Barcode, loanDate, expected)
	if err != nil {
		return model.Loan{}, err
	}

	s.publish(events.LoanCreated, loan.Username, loan.LoanUid, "")
	return loan, nil
}

// Return closes the loan, frees the copy and collects the late fee the
// repository assessed inside the same transaction.
func (s *Service) Return(ctx context.Context, req model.ReturnRequest) (model.ReturnSummary, error) {
	loan, fine, days, err := s.repo.CloseLoan(ctx, req.Username, req.Barcode, s.now().UTC())
	if err != nil {
		return model.ReturnSummary{}, err
	}

	s.publish(events.LoanReturned, loan.Username, loan.LoanUid, "")
	if fine != nil {
		s.publish(events.FineIssued, fine.Username, loan.LoanUid, fine.FineUid)
	}
	return model.ReturnSummary{Loan: loan, OverdueDays: days, Fine: fine}, nil
}

// Extend moves the expected return date forward on an open loan. The new
// date may never precede today nor the current expected date.
func (s *Service) Extend(ctx context.Context, req model.ExtendRequest) (model.Loan, error) {
	newDate := dateOnly(req.NewExpectedReturnDate.Time)
	if newDate.Before(dateOnly(s.now())) {
		return model.Loan{}, errs.ErrDateBackward
	}

	loan, err := s.repo.ExtendLoan(ctx, req.Username, req.LoanUid, newDate)
	if err != nil {
		return model.Loan{}, err
	}

	s.publish(events.LoanExtended, loan.Username, loan.LoanUid, "")
	return loan, nil
}

func (s *Service) ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error) {
	return s.repo.ListLoans(ctx, f)
}
