package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	cb "github.com/libress/lending-service/pkg/circuit_breaker"
	"github.com/libress/lending-service/pkg/kafka"
)

const (
	LoanCreated  = "loan.created"
	LoanReturned = "loan.returned"
	LoanExtended = "loan.extended"
	FineIssued   = "fine.issued"
	FinePaid     = "fine.paid"
)

// LendingEvent is the message published to the lending-events topic and
// folded into the dashboard counters by the stats consumer.
type LendingEvent struct {
	Event    string    `json:"event"`
	Username string    `json:"username"`
	LoanUid  string    `json:"loanUid,omitempty"`
	FineUid  string    `json:"fineUid,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	Publish(event LendingEvent)
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	cb       cb.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		cb:       cb.NewCircuitBreaker(20, time.Second*30, 0.5, 5),
		log:      log.Named("events"),
	}
}

// Publish is best effort: a broker outage must not fail the lending
// operation that already committed.
func (p *kafkaPublisher) Publish(event LendingEvent) {
	if err := p.cb.Call(func() error {
		data, err := json.Marshal(event)
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{Topic: kafka.LendingEventsTopic, Value: sarama.StringEncoder(data)}
		_, _, err = p.producer.SendMessage(msg)
		return err
	}); err != nil {
		p.log.Warn("publish", zap.String("event", event.Event), zap.Error(err))
	}
}
