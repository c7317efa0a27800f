package service

import (
	"context"
)

// CanBorrow fails closed: a probe error blocks borrowing.
func (s *Service) CanBorrow(ctx context.Context, username string) (bool, error) {
	hasFine, err := s.repo.HasActiveFine(ctx, username)
	if err != nil {
		return false, err
	}
	return !hasFine, nil
}

func (s *Service) ActiveLoanCount(ctx context.Context, username string) (int, error) {
	return s.repo.ActiveLoanCount(ctx, username)
}
