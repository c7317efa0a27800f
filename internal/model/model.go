package model

import (
	"math"
	"strings"
	"time"
)

const (
	// MaxOpenLoans is the ceiling of simultaneously open loans per user.
	MaxOpenLoans = 5

	// LateFeeTypeName is the seeded fine type used for automatic overdue
	// assessment. It must exist in fine_types.
	LateFeeTypeName = "LATE_RETURN"
)

// Date carries a date-only value over JSON ("2006-01-02").
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type BookCopy struct {
	ID        int    `json:"-" db:"id"`
	Barcode   string `json:"barcode" db:"barcode"`
	Available bool   `json:"available" db:"available"`
	Location  string `json:"location" db:"location"`
}

// Loan is immutable once closed: Extend touches expected_return_date while
// open, Return writes actual_return_date exactly once.
type Loan struct {
	ID                 int        `json:"-" db:"id"`
	LoanUid            string     `json:"loanUid" db:"loan_uid"`
	UserID             int        `json:"-" db:"user_id"`
	BookCopyID         int        `json:"-" db:"book_copy_id"`
	Username           string     `json:"username" db:"username"`
	Barcode            string     `json:"barcode" db:"barcode"`
	LoanDate           time.Time  `json:"loanDate" db:"loan_date"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Overdue            bool       `json:"overdue" db:"overdue"`
}

// Open reports whether the loan has not been returned yet.
func (l Loan) Open() bool {
	return l.ActualReturnDate == nil
}

// OverdueDays counts started days past the expected return date.
// Zero while the loan is open or returned on time.
func (l Loan) OverdueDays() int {
	if l.ActualReturnDate == nil {
		return 0
	}
	delta := truncateDay(*l.ActualReturnDate).Sub(truncateDay(l.ExpectedReturnDate))
	if delta <= 0 {
		return 0
	}
	return int(math.Ceil(delta.Hours() / 24))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type FineKind string

const (
	FineKindMonetary FineKind = "MONETARY"
	FineKindBan      FineKind = "BAN"
)

type FineStatus string

const (
	FineStatusUnpaid FineStatus = "UNPAID"
	FineStatusPaid   FineStatus = "PAID"
	FineStatusBanned FineStatus = "BANNED"
)

type FineType struct {
	ID        int     `json:"-" db:"id"`
	Name      string  `json:"name" db:"name"`
	DailyRate float64 `json:"dailyRate" db:"daily_rate"`
}

type Fine struct {
	ID         int        `json:"-" db:"id"`
	FineUid    string     `json:"fineUid" db:"fine_uid"`
	Username   string     `json:"username" db:"username"`
	LoanUid    *string    `json:"loanUid,omitempty" db:"loan_uid"`
	FineType   string     `json:"fineType" db:"fine_type"`
	Kind       FineKind   `json:"kind" db:"kind"`
	Amount     float64    `json:"amount" db:"amount"`
	IssuedDate time.Time  `json:"issuedDate" db:"issued_date"`
	Status     FineStatus `json:"status" db:"status"`
	IsActive   bool       `json:"isActive" db:"is_active"`
	Reason     string     `json:"reason,omitempty" db:"reason"`
}

type BorrowRequest struct {
	Barcode  string `json:"barcode" validate:"required"`
	LoanDays int    `json:"loanDays" validate:"required,gt=0"`
	Username string `json:"-"`
}

type ReturnRequest struct {
	Barcode  string `json:"barcode" validate:"required"`
	Username string `json:"-"`
}

type ExtendRequest struct {
	LoanUid               string `json:"loanUid" validate:"required,uuid4"`
	NewExpectedReturnDate Date   `json:"newExpectedReturnDate" validate:"required"`
	Username              string `json:"-"`
}

type IssueFineRequest struct {
	Username string   `json:"username" validate:"required"`
	FineType string   `json:"fineType" validate:"required"`
	Kind     FineKind `json:"kind" validate:"required,oneof=MONETARY BAN"`
	Amount   float64  `json:"amount" validate:"gte=0"`
	Reason   string   `json:"reason"`
}

// ReturnSummary is what the borrower gets back on return: the closed loan
// plus the late fee, if one was assessed.
type ReturnSummary struct {
	Loan        Loan  `json:"loan"`
	OverdueDays int   `json:"overdueDays"`
	Fine        *Fine `json:"fine,omitempty"`
}

type LoanState string

const (
	LoanStateAny    LoanState = ""
	LoanStateOpen   LoanState = "OPEN"
	LoanStateClosed LoanState = "CLOSED"
)

type LoanFilter struct {
	Username    string
	State       LoanState
	OverdueOnly bool
	Page        int
	Size        int
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListLoans struct {
	Paging `json:",inline"`
	Items  []Loan `json:"items"`
}

type ListFines struct {
	Paging `json:",inline"`
	Items  []Fine `json:"items"`
}

type Stats struct {
	Counters map[string]int64 `json:"counters"`
}
