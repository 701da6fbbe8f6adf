package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"lawncare/internal/domain"
)

const (
	TypeBookingCreated = "booking.created"
	TypeContactCreated = "contact.created"
)

type Event struct {
	Type    string
	Booking *domain.Booking
	Contact *domain.Contact
}

// Channel is one notification side effect. Send errors are logged by the
// dispatcher and go nowhere else.
type Channel interface {
	Name() string
	Send(ctx context.Context, ev Event) error
}

// Dispatcher fans events out to its channels. Every channel runs in its own
// goroutine with its own deadline, detached from the request context: by the
// time an event is dispatched the record is already stored, and a failed
// notification must never surface to the caller.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewDispatcher(log *zap.Logger, timeout time.Duration, channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels, timeout: timeout, log: log}
}

func (d *Dispatcher) BookingCreated(b *domain.Booking) {
	d.dispatch(Event{Type: TypeBookingCreated, Booking: b})
}

func (d *Dispatcher) ContactCreated(c *domain.Contact) {
	d.dispatch(Event{Type: TypeContactCreated, Contact: c})
}

func (d *Dispatcher) dispatch(ev Event) {
	for _, ch := range d.channels {
		d.wg.Add(1)
		go func(ch Channel) {
			defer d.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()

			if err := ch.Send(ctx, ev); err != nil {
				d.log.Error("notification channel failed",
					zap.String("channel", ch.Name()),
					zap.String("event", ev.Type),
					zap.Error(err),
				)
				return
			}
			d.log.Info("notification sent",
				zap.String("channel", ch.Name()),
				zap.String("event", ev.Type),
			)
		}(ch)
	}
}

// Wait blocks until in-flight notifications finish. Used on shutdown and in
// tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
