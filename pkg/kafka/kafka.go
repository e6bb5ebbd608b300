package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const RentalsTopic = "rentals"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

// NewAsyncProducer reports failures on Errors(); the caller must drain it.
func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventReservationCreated EventType = "RESERVATION_CREATED"
	EventReservationEnded   EventType = "RESERVATION_ENDED"
	EventReservationsReset  EventType = "RESERVATIONS_RESET"
)

type EventRental struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	ReservationID int       `json:"reservationId,omitempty"`
	BikeID        int       `json:"bikeId,omitempty"`
	UserID        string    `json:"userId,omitempty"`
	TotalCost     *float64  `json:"totalCost,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewEvent(t EventType) EventRental {
	return EventRental{
		ID:        uuid.New(),
		Type:      t,
		Timestamp: time.Now().UTC(),
	}
}
