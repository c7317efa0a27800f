package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/libress/lending-service/internal/errs"
	"github.com/libress/lending-service/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateLoan(ctx context.Context, username, barcode string, loanDate, expectedReturnDate time.Time) (model.Loan, error)
	CloseLoan(ctx context.Context, username, barcode string, returnedAt time.Time) (model.Loan, *model.Fine, int, error)
	ExtendLoan(ctx context.Context, username, loanUid string, newExpectedReturnDate time.Time) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error)

	ActiveLoanCount(ctx context.Context, username string) (int, error)
	HasActiveFine(ctx context.Context, username string) (bool, error)

	GetFineTypeByName(ctx context.Context, name string) (model.FineType, error)
	CreateFine(ctx context.Context, username string, fineTypeID int, kind model.FineKind, amount float64, status model.FineStatus, reason string, issuedAt time.Time) (model.Fine, error)
	DeactivateFine(ctx context.Context, fineUid string, owner *string) (model.Fine, error)
	ListFines(ctx context.Context, username string, activeOnly bool, page, size int) (model.ListFines, error)

	IncrStat(ctx context.Context, metric string, delta int64) error
	GetStats(ctx context.Context) (model.Stats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName     = `users`
	copiesTableName    = `book_copies`
	loansTableName     = `loans`
	finesTableName     = `fines`
	fineTypesTableName = `fine_types`
	statsTableName     = `lending_stats`
)

// a closed loan that came back late stays overdue forever
const overdueExpr = `(l.actual_return_date is null and l.expected_return_date < now())
	or (l.actual_return_date > l.expected_return_date)`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// CreateLoan is the whole borrow unit: the user row lock serializes same-user
// borrows, the guarded copy flip arbitrates racing borrows on one barcode,
// and the loan insert rides the same transaction so a failed flip leaves
// nothing behind.
func (r *repository) CreateLoan(ctx context.Context, username, barcode string, loanDate, expectedReturnDate time.Time) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var userID int
	if err := tx.GetContext(ctx, &userID,
		`select id from users where username = $1 for update`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}

	var hasFine bool
	if err := tx.GetContext(ctx, &hasFine,
		`select exists(select 1 from fines where user_id = $1 and is_active)`, userID); err != nil {
		return model.Loan{}, err
	}
	if hasFine {
		return model.Loan{}, errs.ErrActiveFine
	}

	var open int
	if err := tx.GetContext(ctx, &open,
		`select count(*) from loans where user_id = $1 and actual_return_date is null`, userID); err != nil {
		return model.Loan{}, err
	}
	if open >= model.MaxOpenLoans {
		return model.Loan{}, errs.ErrLoanLimit
	}

	res, err := tx.ExecContext(ctx,
		`update book_copies set available = false where barcode = $1 and available`, barcode)
	if err != nil {
		return model.Loan{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Loan{}, err
	} else if n == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists(select 1 from book_copies where barcode = $1)`, barcode); err != nil {
			return model.Loan{}, err
		}
		if !exists {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, errs.ErrCopyLent
	}

	q := `insert into loans (loan_uid, user_id, book_copy_id, loan_date, expected_return_date)
	select $1, $2, bc.id, $3, $4 from book_copies bc where bc.barcode = $5
	returning id, loan_uid, user_id, book_copy_id, loan_date, expected_return_date, actual_return_date`

	var loan model.Loan
	if err := tx.GetContext(ctx, &loan, q,
		uuid.New(), userID, loanDate.Format(time.DateOnly), expectedReturnDate.Format(time.DateOnly), barcode); err != nil {
		if isUniqueViolation(err) {
			// lost the open-loan-per-copy race despite the flip
			return model.Loan{}, errs.ErrCopyLent
		}
		r.log.Error("CreateLoan", zap.String("barcode", barcode), zap.Error(err))
		return model.Loan{}, err
	}
	loan.Username = username
	loan.Barcode = barcode

	if err := tx.Commit(); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// CloseLoan closes the open loan for the barcode, frees the copy and, when
// the return is late, assesses the late fee — all in one transaction, so the
// loan never ends up closed with its fee lost to a mid-flight failure.
// The loan row lock keeps duplicate returns single-shot.
func (r *repository) CloseLoan(ctx context.Context, username, barcode string, returnedAt time.Time) (model.Loan, *model.Fine, int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, nil, 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `select l.id, l.loan_uid, l.user_id, l.book_copy_id, u.username, bc.barcode,
		l.loan_date, l.expected_return_date, l.actual_return_date
	from loans l
	join users u on u.id = l.user_id
	join book_copies bc on bc.id = l.book_copy_id
	where bc.barcode = $1 and l.actual_return_date is null
	for update of l`

	var loan model.Loan
	if err := tx.GetContext(ctx, &loan, q, barcode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, nil, 0, errs.ErrNotFound
		}
		return model.Loan{}, nil, 0, err
	}
	if loan.Username != username {
		return model.Loan{}, nil, 0, errs.ErrForbidden
	}

	if _, err := tx.ExecContext(ctx,
		`update loans set actual_return_date = $2 where id = $1`, loan.ID, returnedAt); err != nil {
		return model.Loan{}, nil, 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`update book_copies set available = true where id = $1`, loan.BookCopyID); err != nil {
		return model.Loan{}, nil, 0, err
	}

	loan.ActualReturnDate = &returnedAt
	days := loan.OverdueDays()
	var fine *model.Fine
	if days > 0 {
		if fine, err = r.assessLateFee(ctx, tx, loan, days, returnedAt); err != nil {
			return model.Loan{}, nil, 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, nil, 0, err
	}
	return loan, fine, days, nil
}

// assessLateFee issues the automatic overdue fine within the return
// transaction. The conflict target is the one-late-fee-per-loan index;
// a row already guarded there is kept as is.
func (r *repository) assessLateFee(ctx context.Context, tx *sqlx.Tx, loan model.Loan, days int, issuedAt time.Time) (*model.Fine, error) {
	var ft model.FineType
	if err := tx.GetContext(ctx, &ft,
		`select id, name, daily_rate from fine_types where name = $1`, model.LateFeeTypeName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrLateFeeTypeGone
		}
		return nil, err
	}

	amount := float64(days) * ft.DailyRate
	q := `insert into fines (fine_uid, user_id, loan_id, fine_type_id, kind, amount, issued_date, status, is_active)
	values ($1, $2, $3, $4, $5, $6, $7, $8, true)
	on conflict (loan_id) where loan_id is not null do nothing
	returning fine_uid, kind, amount, issued_date, status, is_active, reason`

	var fine model.Fine
	err := tx.GetContext(ctx, &fine, q,
		uuid.New(), loan.UserID, loan.ID, ft.ID,
		model.FineKindMonetary, amount, issuedAt, model.FineStatusUnpaid)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.GetContext(ctx, &fine,
			`select fine_uid, kind, amount, issued_date, status, is_active, reason
			from fines where loan_id = $1`, loan.ID)
	}
	if err != nil {
		r.log.Error("assessLateFee", zap.String("loanUid", loan.LoanUid), zap.Error(err))
		return nil, err
	}
	fine.Username = loan.Username
	fine.LoanUid = &loan.LoanUid
	fine.FineType = ft.Name
	return &fine, nil
}

// ExtendLoan moves expected_return_date forward on an open loan owned by
// username. The date guard sits in the update itself; a zero-row result is
// classified with a follow-up probe.
func (r *repository) ExtendLoan(ctx context.Context, username, loanUid string, newExpectedReturnDate time.Time) (model.Loan, error) {
	newDate := newExpectedReturnDate.Format(time.DateOnly)

	q := `update loans l
	set expected_return_date = $1
	from users u, book_copies bc
	where l.loan_uid = $2
	  and u.id = l.user_id and u.username = $3
	  and bc.id = l.book_copy_id
	  and l.actual_return_date is null
	  and l.expected_return_date <= $1::date
	returning l.id, l.loan_uid, l.user_id, l.book_copy_id, u.username, bc.barcode,
		l.loan_date, l.expected_return_date, l.actual_return_date`

	var loan model.Loan
	err := r.db.GetContext(ctx, &loan, q, newDate, loanUid, username)
	if err == nil {
		return loan, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, err
	}

	probe := `select l.id, l.loan_uid, l.user_id, l.book_copy_id, u.username, bc.barcode,
		l.loan_date, l.expected_return_date, l.actual_return_date
	from loans l
	join users u on u.id = l.user_id
	join book_copies bc on bc.id = l.book_copy_id
	where l.loan_uid = $1 and u.username = $2`

	var cur model.Loan
	if err := r.db.GetContext(ctx, &cur, probe, loanUid, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	if !cur.Open() {
		return model.Loan{}, errs.ErrClosedLoan
	}
	return model.Loan{}, errs.ErrDateBackward
}

func (r *repository) ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error) {
	q := qb.Select(
		"l.loan_uid", "u.username", "bc.barcode",
		"l.loan_date", "l.expected_return_date", "l.actual_return_date",
		"("+overdueExpr+") as overdue").
		From(loansTableName + " l").
		Join(usersTableName + " u on u.id = l.user_id").
		Join(copiesTableName + " bc on bc.id = l.book_copy_id").
		OrderBy("l.loan_date desc", "l.id desc")

	if f.Username != "" {
		q = q.Where(sq.Eq{"u.username": f.Username})
	}
	switch f.State {
	case model.LoanStateOpen:
		q = q.Where("l.actual_return_date is null")
	case model.LoanStateClosed:
		q = q.Where("l.actual_return_date is not null")
	}
	if f.OverdueOnly {
		q = q.Where(overdueExpr)
	}
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListLoans{}, err
	}
	r.log.Debug("ListLoans", zap.String("query", query), zap.Any("args", args))

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return model.ListLoans{}, err
	}

	return model.ListLoans{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: len(loans),
		},
		Items: loans,
	}, nil
}

func (r *repository) ActiveLoanCount(ctx context.Context, username string) (int, error) {
	q := `
	select count(*) from loans l
	join users u on u.id = l.user_id
	where u.username = $1 and l.actual_return_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) HasActiveFine(ctx context.Context, username string) (bool, error) {
	q := `
	select exists(
		select 1 from fines f
		join users u on u.id = f.user_id
		where u.username = $1 and f.is_active
	)
`
	var has bool
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

func (r *repository) GetFineTypeByName(ctx context.Context, name string) (model.FineType, error) {
	q, args, err := qb.Select("id", "name", "daily_rate").
		From(fineTypesTableName).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return model.FineType{}, err
	}

	var ft model.FineType
	if err := r.db.GetContext(ctx, &ft, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FineType{}, errs.ErrNotFound
		}
		return model.FineType{}, err
	}
	return ft, nil
}

func (r *repository) CreateFine(ctx context.Context, username string, fineTypeID int, kind model.FineKind, amount float64, status model.FineStatus, reason string, issuedAt time.Time) (model.Fine, error) {
	q := `insert into fines (fine_uid, user_id, fine_type_id, kind, amount, issued_date, status, is_active, reason)
	select $1, u.id, $2, $3, $4, $5, $6, true, $7 from users u where u.username = $8
	returning fine_uid, kind, amount, issued_date, status, is_active, reason`

	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q,
		uuid.New(), fineTypeID, kind, amount, issuedAt, status, reason, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	fine.Username = username
	return fine, nil
}

// DeactivateFine settles a fine: status PAID, is_active false. With owner set
// it is the self-service payment path (ownership and kind checked); without,
// the administrative revoke. Only active fines qualify, so a repeated call
// reports not found instead of re-applying the effect.
func (r *repository) DeactivateFine(ctx context.Context, fineUid string, owner *string) (model.Fine, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Fine{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `select f.id, f.fine_uid, u.username, ft.name as fine_type,
		f.kind, f.amount, f.issued_date, f.status, f.is_active, f.reason
	from fines f
	join users u on u.id = f.user_id
	join fine_types ft on ft.id = f.fine_type_id
	where f.fine_uid = $1 and f.is_active
	for update of f`

	var fine model.Fine
	if err := tx.GetContext(ctx, &fine, q, fineUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	if owner != nil {
		if fine.Username != *owner {
			return model.Fine{}, errs.ErrForbidden
		}
		if fine.Kind == model.FineKindBan {
			return model.Fine{}, errs.ErrFineNotPayable
		}
	}

	if _, err := tx.ExecContext(ctx,
		`update fines set status = $2, is_active = false where id = $1`,
		fine.ID, model.FineStatusPaid); err != nil {
		return model.Fine{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Fine{}, err
	}

	fine.Status = model.FineStatusPaid
	fine.IsActive = false
	return fine, nil
}

func (r *repository) ListFines(ctx context.Context, username string, activeOnly bool, page, size int) (model.ListFines, error) {
	q := qb.Select(
		"f.fine_uid", "u.username", "l.loan_uid", "ft.name as fine_type",
		"f.kind", "f.amount", "f.issued_date", "f.status", "f.is_active", "f.reason").
		From(finesTableName + " f").
		Join(usersTableName + " u on u.id = f.user_id").
		LeftJoin(loansTableName + " l on l.id = f.loan_id").
		Join(fineTypesTableName + " ft on ft.id = f.fine_type_id").
		Where(sq.Eq{"u.username": username}).
		OrderBy("f.issued_date desc", "f.id desc")

	if activeOnly {
		q = q.Where("f.is_active")
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListFines{}, err
	}

	var fines []model.Fine
	if err := r.db.SelectContext(ctx, &fines, query, args...); err != nil {
		return model.ListFines{}, err
	}

	return model.ListFines{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(fines),
		},
		Items: fines,
	}, nil
}

func (r *repository) IncrStat(ctx context.Context, metric string, delta int64) error {
	q := `insert into lending_stats (metric, value) values ($1, $2)
	on conflict (metric) do update set value = lending_stats.value + excluded.value`
	_, err := r.db.ExecContext(ctx, q, metric, delta)
	return err
}

func (r *repository) GetStats(ctx context.Context) (model.Stats, error) {
	q, args, err := qb.Select("metric", "value").From(statsTableName).ToSql()
	if err != nil {
		return model.Stats{}, err
	}

	rows, err := r.db.QueryxContext(ctx, q, args...)
	if err != nil {
		return model.Stats{}, err
	}
	defer rows.Close()

	stats := model.Stats{Counters: make(map[string]int64)}
	for rows.Next() {
		var (
			metric string
			value  int64
		)
		if err := rows.Scan(&metric, &value); err != nil {
			return model.Stats{}, err
		}
		stats.Counters[metric] = value
	}
	return stats, rows.Err()
}
