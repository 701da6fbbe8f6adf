package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "events"
	exchangeKind = "topic"
)

// EventRelay publishes created-record events to a topic exchange so other
// tooling (CRM imports, dashboards) can consume them without touching the
// database.
type EventRelay struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ Channel = (*EventRelay)(nil)

func NewEventRelay(url string) (*EventRelay, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}

	return &EventRelay{conn: conn, channel: ch}, nil
}

func (r *EventRelay) Name() string { return "amqp" }

func (r *EventRelay) Send(ctx context.Context, ev Event) error {
	var payload any
	switch ev.Type {
	case TypeBookingCreated:
		payload = ev.Booking
	case TypeContactCreated:
		payload = ev.Contact
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	if err := r.channel.PublishWithContext(ctx,
		exchangeName,
		ev.Type,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *EventRelay) Close() {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}
