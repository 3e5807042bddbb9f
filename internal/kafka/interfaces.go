package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageReader - часть *kafka.Reader, нужная потребителю: чтение без автокоммита и явный коммит
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageWriter - часть *kafka.Writer, нужная продюсеру
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_event_producer.go -package=mocks
type EventProducer interface {
	SendEvent(ctx context.Context, event Event) error
	Close() error
}

type EventConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, Event) error)
	Close() error
}
