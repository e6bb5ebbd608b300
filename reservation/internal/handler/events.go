package handler

import (
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/bike-rental/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=events.go -destination=mocks/events.go -package=mock_handler

type EventLog interface {
	Log(ev kafka.EventRental) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

// NewEventLog returns nil when there is no producer; a nil *eventLog drops events.
func NewEventLog(producer sarama.AsyncProducer, topic string) *eventLog {
	if producer == nil {
		return nil
	}
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(ev kafka.EventRental) error {
	if l == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	l.producer.Input() <- &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(ev.BikeID)),
		Value: sarama.ByteEncoder(data),
	}
	return nil
}
