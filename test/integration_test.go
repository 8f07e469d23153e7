package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tokenbag/domain"
	"tokenbag/domain/event"
	"tokenbag/engine"
	"tokenbag/mocks"
	"tokenbag/observability"
	"tokenbag/repositories"
	"tokenbag/runtime"
	"tokenbag/runtime/workers"
	"tokenbag/services"
	"tokenbag/weather"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	// 1. Create channel to wait for a signal at the end of process
	done := make(chan struct{})
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	domainEvents := make(chan event.DomainEvent, 64)
	telemetryEvents := make(chan event.DomainEvent, 64)

	registry := runtime.NewRegistry()
	monitoring := observability.NewMonitoringManager(log)
	counter := event.NewCounter()

	supervisor := workers.NewSupervisor(log).Add(
		workers.NewEventFanout(log, domainEvents, telemetryEvents, registry, monitoring),
		workers.NewTelemetryWorker(log, telemetryEvents,
			[]event.Handler{event.NewDrawStatsHandler(log, counter)}),
	)
	go supervisor.Run(ctx)

	roomRepository := repositories.NewRoomRepository(db, log)
	historyRepository := repositories.NewHistoryRepository(db, log)
	roomService := services.NewRoomService(
		log, roomRepository, historyRepository,
		engine.New(42), weather.NewGenerator(42),
		runtime.NewTracker(), runtime.NewRoomLocks(),
		registry, monitoring, domainEvents,
	)

	// Clean everything at the end of the test
	t.Cleanup(func() {
		supervisor.Stop()
		db.Close()
	})

	// 2. A subscriber sink that signals once the draw broadcast arrives
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if _, ok := e.(event.TokensDrawn); ok {
				close(done)
			}
			return nil
		}).
		AnyTimes()

	// When the master opens a table and a player joins
	room, err := roomService.CreateRoom(ctx, "", "Alice")
	req.NoError(err)
	roomService.Subscribe("conn-e2e", room.ID, sink)

	_, err = roomService.JoinRoom(ctx, services.JoinRoomCommand{
		Room: room.ID, PlayerName: "Bob",
	})
	req.NoError(err)

	// And the bag is filled and drawn from
	_, err = roomService.ConfigureBag(ctx, room.ID, domain.Bag{Successes: 3, Complications: 2})
	req.NoError(err)

	result, err := roomService.Draw(ctx, domain.DrawRequest{
		Room: room.ID, PlayerName: "Bob", Count: 2,
	})
	req.NoError(err)
	req.Len(result.Drawn, 2)

	// And wait time for channels & goroutines
	select {
	case <-done:
		// Then the draw broadcast has reached the subscriber
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: draw broadcast has never reached the subscriber")
	}

	// And the ledger holds the committed draw
	records, err := historyRepository.Recent(room.ID, 20)
	req.NoError(err)
	req.Len(records, 1)
	req.Equal("Bob", records[0].PlayerName)
}
