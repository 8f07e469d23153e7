package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tokenbag/contract"
	"tokenbag/domain"
	"tokenbag/domain/event"
	"tokenbag/mocks"
	"tokenbag/observability"
)

func TestEventFanout_Fanout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	roomSink := mocks.NewMockEventSink(ctrl)
	permanentSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{roomSink, roomSink}

	monitoring := observability.NewMonitoringManager(log)
	worker := NewEventFanout(log, nil, nil, mockRegistry, monitoring).
		Add(permanentSink)

	evt := event.TokensDrawn{Room: domain.RoomID("ab12cd34")}

	// Given two room sinks and one permanent sink
	mockRegistry.EXPECT().GetSinksForRoom(domain.RoomID("ab12cd34")).Return(roomSinks).Times(1)
	roomSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(2)
	permanentSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	// When the worker fans out one event
	worker.Fanout(context.Background(), evt)

	// Then every sink saw it and the counters moved
	req.Equal(uint64(3), monitoring.GetLatest().EventsFanned)
	req.Equal(uint64(0), monitoring.GetLatest().EventsDropped)
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	slowSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{slowSink}

	monitoring := observability.NewMonitoringManager(log)
	worker := NewEventFanout(log, nil, nil, mockRegistry, monitoring)

	evt := event.BagReset{Room: domain.RoomID("ab12cd34")}

	mockRegistry.EXPECT().GetSinksForRoom(domain.RoomID("ab12cd34")).Return(roomSinks).Times(1)
	// Given a sink blocked until its delivery deadline expires
	slowSink.EXPECT().Consume(gomock.Any(), evt).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)

	worker.Fanout(context.Background(), evt)

	// Then the event counts as dropped, not delivered
	req.Equal(uint64(0), monitoring.GetLatest().EventsFanned)
	req.Equal(uint64(1), monitoring.GetLatest().EventsDropped)
}

func TestEventFanout_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockRegistry.EXPECT().GetSinksForRoom(gomock.Any()).Return(nil).AnyTimes()

	domainChan := make(chan event.DomainEvent, 1)
	telemetryChan := make(chan event.DomainEvent, 1)
	monitoring := observability.NewMonitoringManager(log)
	worker := NewEventFanout(log, domainChan, telemetryChan, mockRegistry, monitoring)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// When an event arrives it is forwarded to the telemetry channel
	evt := event.BagReset{Room: domain.RoomID("ab12cd34")}
	domainChan <- evt

	select {
	case forwarded := <-telemetryChan:
		req.Equal(evt, forwarded)
	case <-time.After(1 * time.Second):
		req.Fail("Telemetry event was not forwarded in time")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Worker did not stop on context cancel")
	}
}
