package workers

import (
	"context"
	"log/slog"
	"time"

	"tokenbag/contract"
	"tokenbag/domain/event"
	"tokenbag/observability"
)

const sinkTimeout = 2 * time.Second

// EventFanout broadcasts committed domain events to the room's live
// subscribers plus a set of permanent sinks (projections, logs).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker:
// the durable draw ledger lives in the repositories, this path only
// mirrors state for observers.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	Log            *slog.Logger
	DomainEvent    chan event.DomainEvent
	TelemetryEvent chan event.DomainEvent
	registry       contract.IRegistry
	monitoring     *observability.MonitoringManager
	permanent      []contract.EventSink
}

func NewEventFanout(
	log *slog.Logger,
	domainEvent, telemetryEvent chan event.DomainEvent,
	registry contract.IRegistry,
	monitoring *observability.MonitoringManager,
) *EventFanout {
	return &EventFanout{
		Log:            log,
		DomainEvent:    domainEvent,
		TelemetryEvent: telemetryEvent,
		registry:       registry,
		monitoring:     monitoring,
	}
}

// Add registers sinks that receive every event regardless of room.
func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.permanent = append(w.permanent, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.DomainEvent:
			w.Fanout(ctx, evt)
			select {
			case w.TelemetryEvent <- evt:
			default:
				w.Log.Debug("Telemetry event lost")
			}
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout delivers one event to the room's sinks and the permanent sinks.
// Each delivery gets its own deadline so one stuck consumer cannot stall
// the rest of the table.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := w.registry.GetSinksForRoom(evt.RoomID())
	sinks = append(sinks, w.permanent...)

	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.Log.Debug("Sink dropped event", "error", err)
			w.monitoring.IncrEventsDropped()
		} else {
			w.monitoring.IncrEventsFanned()
		}
		cancel()
	}
}
