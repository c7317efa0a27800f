package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/libress/lending-service/internal/errs"
	"github.com/libress/lending-service/internal/model"
	mock_repository "github.com/libress/lending-service/internal/repository/mocks"
)

var testNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestService(repo *mock_repository.MockRepository) *Service {
	s := NewService(repo, nil, zap.NewNop())
	s.now = func() time.Time { return testNow }
	return s
}

func TestService_Borrow(t *testing.T) {
	type mockBehavior func(r *mock_repository.MockRepository)

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          model.BorrowRequest
		mockBehavior mockBehavior
		wantLoan     model.Loan
		wantErr      error
	}{
		{
			name: "ok",
			req:  model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 14},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(false, nil)
				r.EXPECT().
					CreateLoan(gomock.Any(), "reader", "BC-0001", today, today.AddDate(0, 0, 14)).
					Return(model.Loan{
						LoanUid:            "a0000000-0000-4000-8000-000000000001",
						Username:           "reader",
						Barcode:            "BC-0001",
						LoanDate:           today,
						ExpectedReturnDate: today.AddDate(0, 0, 14),
					}, nil)
			},
			wantLoan: model.Loan{
				LoanUid:            "a0000000-0000-4000-8000-000000000001",
				Username:           "reader",
				Barcode:            "BC-0001",
				LoanDate:           today,
				ExpectedReturnDate: today.AddDate(0, 0, 14),
			},
		},
		{
			name:         "non-positive loan days",
			req:          model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 0},
			mockBehavior: func(r *mock_repository.MockRepository) {},
			wantErr:      errs.ErrLoanDays,
		},
		{
			name: "active fine blocks borrowing",
			req:  model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 7},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(true, nil)
			},
			wantErr: errs.ErrActiveFine,
		},
		{
			name: "eligibility probe fails closed",
			req:  model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 7},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(false, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "open loan ceiling reached",
			req:  model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 7},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(false, nil)
				r.EXPECT().
					CreateLoan(gomock.Any(), "reader", "BC-0001", today, today.AddDate(0, 0, 7)).
					Return(model.Loan{}, errs.ErrLoanLimit)
			},
			wantErr: errs.ErrLoanLimit,
		},
		{
			name: "copy already lent",
			req:  model.BorrowRequest{Username: "reader", Barcode: "BC-0001", LoanDays: 7},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(false, nil)
				r.EXPECT().
					CreateLoan(gomock.Any(), "reader", "BC-0001", today, today.AddDate(0, 0, 7)).
					Return(model.Loan{}, errs.ErrCopyLent)
			},
			wantErr: errs.ErrCopyLent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_repository.NewMockRepository(ctrl)
			tt.mockBehavior(repo)

			svc := newTestService(repo)
			loan, err := svc.Borrow(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLoan, loan)
		})
	}
}

func TestService_Return(t *testing.T) {
	type mockBehavior func(r *mock_repository.MockRepository)

	expected := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	returned := testNow

	closedLoan := model.Loan{
		LoanUid:            "a0000000-0000-4000-8000-000000000002",
		Username:           "reader",
		Barcode:            "BC-0002",
		LoanDate:           expected.AddDate(0, 0, -14),
		ExpectedReturnDate: expected,
		ActualReturnDate:   &returned,
		Overdue:            true,
	}

	tests := []struct {
		name         string
		req          model.ReturnRequest
		mockBehavior mockBehavior
		wantDays     int
		wantFine     bool
		wantErr      error
	}{
		{
			name: "late return carries the assessed fine",
			req:  model.ReturnRequest{Username: "reader", Barcode: "BC-0002"},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().CloseLoan(gomock.Any(), "reader", "BC-0002", testNow).
					Return(closedLoan,
						&model.Fine{FineUid: "b0000000-0000-4000-8000-000000000001", Username: "reader", Amount: 10},
						2, nil)
			},
			wantDays: 2,
			wantFine: true,
		},
		{
			name: "on time return",
			req:  model.ReturnRequest{Username: "reader", Barcode: "BC-0002"},
			mockBehavior: func(r *mock_repository.MockRepository) {
				onTime := closedLoan
				later := expected.AddDate(0, 0, 5)
				onTime.ExpectedReturnDate = later
				onTime.Overdue = false
				r.EXPECT().CloseLoan(gomock.Any(), "reader", "BC-0002", testNow).
					Return(onTime, nil, 0, nil)
			},
		},
		{
			name: "no open loan for barcode",
			req:  model.ReturnRequest{Username: "reader", Barcode: "BC-0404"},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().CloseLoan(gomock.Any(), "reader", "BC-0404", testNow).
					Return(model.Loan{}, nil, 0, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "someone else's loan",
			req:  model.ReturnRequest{Username: "intruder", Barcode: "BC-0002"},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().CloseLoan(gomock.Any(), "intruder", "BC-0002", testNow).
					Return(model.Loan{}, nil, 0, errs.ErrForbidden)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "late fee type missing rolls the close back",
			req:  model.ReturnRequest{Username: "reader", Barcode: "BC-0002"},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().CloseLoan(gomock.Any(), "reader", "BC-0002", testNow).
					Return(model.Loan{}, nil, 0, errs.ErrLateFeeTypeGone)
			},
			wantErr: errs.ErrLateFeeTypeGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_repository.NewMockRepository(ctrl)
			tt.mockBehavior(repo)

			svc := newTestService(repo)
			summary, err := svc.Return(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDays, summary.OverdueDays)
			if tt.wantFine {
				require.NotNil(t, summary.Fine)
				require.Equal(t, float64(10), summary.Fine.Amount)
			} else {
				require.Nil(t, summary.Fine)
			}
		})
	}
}

func TestService_Extend(t *testing.T) {
	type mockBehavior func(r *mock_repository.MockRepository)

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	loanUid := "a0000000-0000-4000-8000-000000000003"

	tests := []struct {
		name         string
		req          model.ExtendRequest
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "ok",
			req: model.ExtendRequest{
				Username:              "reader",
				LoanUid:               loanUid,
				NewExpectedReturnDate: model.Date{Time: today.AddDate(0, 0, 7)},
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().ExtendLoan(gomock.Any(), "reader", loanUid, today.AddDate(0, 0, 7)).
					Return(model.Loan{LoanUid: loanUid, Username: "reader", ExpectedReturnDate: today.AddDate(0, 0, 7)}, nil)
			},
		},
		{
			name: "today is allowed",
			req: model.ExtendRequest{
				Username:              "reader",
				LoanUid:               loanUid,
				NewExpectedReturnDate: model.Date{Time: today},
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().ExtendLoan(gomock.Any(), "reader", loanUid, today).
					Return(model.Loan{LoanUid: loanUid, Username: "reader", ExpectedReturnDate: today}, nil)
			},
		},
		{
			name: "date before today",
			req: model.ExtendRequest{
				Username:              "reader",
				LoanUid:               loanUid,
				NewExpectedReturnDate: model.Date{Time: today.AddDate(0, 0, -1)},
			},
			mockBehavior: func(r *mock_repository.MockRepository) {},
			wantErr:      errs.ErrDateBackward,
		},
		{
			name: "date behind current expected",
			req: model.ExtendRequest{
				Username:              "reader",
				LoanUid:               loanUid,
				NewExpectedReturnDate: model.Date{Time: today.AddDate(0, 0, 3)},
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().ExtendLoan(gomock.Any(), "reader", loanUid, today.AddDate(0, 0, 3)).
					Return(model.Loan{}, errs.ErrDateBackward)
			},
			wantErr: errs.ErrDateBackward,
		},
		{
			name: "closed loan",
			req: model.ExtendRequest{
				Username:              "reader",
				LoanUid:               loanUid,
				NewExpectedReturnDate: model.Date{Time: today.AddDate(0, 0, 7)},
			},
			mockBehavior: func(r *mock_repository.MockRepository) {
				r.EXPECT().ExtendLoan(gomock.Any(), "reader", loanUid, today.AddDate(0, 0, 7)).
					Return(model.Loan{}, errs.ErrClosedLoan)
			},
			wantErr: errs.ErrClosedLoan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_repository.NewMockRepository(ctrl)
			tt.mockBehavior(repo)

			svc := newTestService(repo)
			_, err := svc.Extend(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_CanBorrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_repository.NewMockRepository(ctrl)
	repo.EXPECT().HasActiveFine(gomock.Any(), "reader").Return(false, nil)
	repo.EXPECT().HasActiveFine(gomock.Any(), "debtor").Return(true, nil)

	svc := newTestService(repo)

	ok, err := svc.CanBorrow(context.Background(), "reader")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.CanBorrow(context.Background(), "debtor")
	require.NoError(t, err)
	require.False(t, ok)
}
