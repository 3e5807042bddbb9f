package kafka

import (
	"errors"
	"time"
)

type EventType string

const (
	EventTypeNotifySuccess EventType = "notify_success"
	EventTypeNotifyError   EventType = "notify_error"
)

// HeaderEventType заголовок сообщения с типом события, чтобы читатель мог фильтровать без разбора тела
const HeaderEventType = "event-type"

var ErrInvalidEvent = errors.New("invalid cart event")

// Event - уведомление корзины, которое уходит в топик
type Event struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (e Event) validate() error {
	switch {
	case e.SessionID == "":
		return errors.Join(ErrInvalidEvent, errors.New("empty session id"))
	case e.Type != EventTypeNotifySuccess && e.Type != EventTypeNotifyError:
		return errors.Join(ErrInvalidEvent, errors.New("unknown event type "+string(e.Type)))
	}
	return nil
}
