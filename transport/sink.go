package transport

import (
	"context"

	"tokenbag/domain/event"
)

// ConnSink bridges the fanout to one websocket connection. Consume is
// called by the fanout worker; the connection's writer goroutine drains
// Events. A full buffer drops the event rather than stalling the fanout.
type ConnSink struct {
	Events chan event.DomainEvent
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{Events: make(chan event.DomainEvent, bufferSize)}
}

func (s *ConnSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Backpressure: slow consumers miss events, the table moves on.
		return nil
	}
}
