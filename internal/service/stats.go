package service

import (
	"context"

	"github.com/libress/lending-service/internal/model"
)

// RecordEvent folds a consumed lending event into the dashboard counters.
func (s *Service) RecordEvent(ctx context.Context, event string) error {
	return s.repo.IncrStat(ctx, event, 1)
}

func (s *Service) GetStats(ctx context.Context) (model.Stats, error) {
	return s.repo.GetStats(ctx)
}
