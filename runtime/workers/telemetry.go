package workers

import (
	"context"
	"log/slog"

	"tokenbag/domain/event"
)

// TelemetryWorker drains the telemetry channel and hands each event to
// the registered handlers. Losing an event here only skews counters.
type TelemetryWorker struct {
	log           *slog.Logger
	telemetryChan chan event.DomainEvent
	handlers      []event.Handler
}

func NewTelemetryWorker(log *slog.Logger,
	telemetryChan chan event.DomainEvent,
	handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:           log,
		telemetryChan: telemetryChan,
		handlers:      handlers,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case evt := <-w.telemetryChan:
			w.handle(evt)
		}
	}
}

func (w *TelemetryWorker) handle(evt event.DomainEvent) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}
