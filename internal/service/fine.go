package service

import (
	"context"

	"github.com/libress/lending-service/internal/errs"
	"github.com/libress/lending-service/internal/events"
	"github.com/libress/lending-service/internal/model"
)

// IssueFine is the administrative path. A ban is an explicit kind, not an
// amount sentinel: it carries no payable amount and status BANNED.
func (s *Service) IssueFine(ctx context.Context, req model.IssueFineRequest) (model.Fine, error) {
	status := model.FineStatusUnpaid
	amount := req.Amount
	if req.Kind == model.FineKindBan {
		status = model.FineStatusBanned
		amount = 0
	} else if amount <= 0 {
		return model.Fine{}, errs.ErrFineAmount
	}

	ft, err := s.repo.GetFineTypeByName(ctx, req.FineType)
	if err != nil {
		return model.Fine{}, err
	}

	fine, err := s.repo.CreateFine(ctx, req.Username, ft.ID, req.Kind, amount, status, req.Reason, s.now().UTC())
	if err != nil {
		return model.Fine{}, err
	}
	fine.FineType = ft.Name

	s.publish(events.FineIssued, fine.Username, "", fine.FineUid)
	return fine, nil
}

// PayFine settles the caller's own fine; paying someone else's is forbidden
// and paying twice finds no active fine the second time.
func (s *Service) PayFine(ctx context.Context, username, fineUid string) (model.Fine, error) {
	fine, err := s.repo.DeactivateFine(ctx, fineUid, &username)
	if err != nil {
		return model.Fine{}, err
	}
	s.publish(events.FinePaid, fine.Username, "", fine.FineUid)
	return fine, nil
}

// RevokeFine is privileged: no ownership check, bans included.
func (s *Service) RevokeFine(ctx context.Context, fineUid string) (model.Fine, error) {
	fine, err := s.repo.DeactivateFine(ctx, fineUid, nil)
	if err != nil {
		return model.Fine{}, err
	}
	s.publish(events.FinePaid, fine.Username, "", fine.FineUid)
	return fine, nil
}

func (s *Service) ListFines(ctx context.Context, username string, activeOnly bool, page, size int) (model.ListFines, error) {
	return s.repo.ListFines(ctx, username, activeOnly, page, size)
}
