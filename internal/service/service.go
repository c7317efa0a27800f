package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/libress/lending-service/internal/events"
	"github.com/libress/lending-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  events.Publisher
	now  func() time.Time
}

func NewService(repo repository.Repository, pub events.Publisher, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		pub:  pub,
		now:  time.Now,
	}
}

func (s *Service) publish(event, username, loanUid, fineUid string) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.LendingEvent{
		Event:    event,
		Username: username,
		LoanUid:  loanUid,
		FineUid:  fineUid,
		At:       s.now().UTC(),
	})
}
