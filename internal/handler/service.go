package handler

import (
	"context"

	"github.com/libress/lending-service/internal/model"
	"github.com/libress/lending-service/internal/service"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

var (
	_ LoanService  = (*service.Service)(nil)
	_ FineService  = (*service.Service)(nil)
	_ StatsService = (*service.Service)(nil)
)

type LoanService interface {
	Borrow(ctx context.Context, req model.BorrowRequest) (model.Loan, error)
	Return(ctx context.Context, req model.ReturnRequest) (model.ReturnSummary, error)
	Extend(ctx context.Context, req model.ExtendRequest) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error)
}

type FineService interface {
	IssueFine(ctx context.Context, req model.IssueFineRequest) (model.Fine, error)
	PayFine(ctx context.Context, username, fineUid string) (model.Fine, error)
	RevokeFine(ctx context.Context, fineUid string) (model.Fine, error)
	ListFines(ctx context.Context, username string, activeOnly bool, page, size int) (model.ListFines, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (model.Stats, error)
}
