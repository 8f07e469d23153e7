package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"tokenbag/auth"
	"tokenbag/domain/event"
	"tokenbag/engine"
	"tokenbag/observability"
	"tokenbag/projection"
	"tokenbag/random"
	"tokenbag/repositories"
	"tokenbag/runtime"
	"tokenbag/runtime/workers"
	"tokenbag/services"
	"tokenbag/transport"
	"tokenbag/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for HTTP and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Domain wiring
	seed, err := random.NewSeed()
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	roomRepository := repositories.NewRoomRepository(db, log)
	historyRepository := repositories.NewHistoryRepository(db, log)
	characterRepository := repositories.NewCharacterRepository(db, log)
	userRepository := repositories.NewUserRepository(db)

	registry := runtime.NewRegistry()
	tracker := runtime.NewTracker()
	locks := runtime.NewRoomLocks()
	monitoring := observability.NewMonitoringManager(log)

	domainEvents := make(chan event.DomainEvent, config.BufferSize)
	telemetryEvents := make(chan event.DomainEvent, config.BufferSize)

	tokens := auth.NewTokenManager(config.JWTSecret, config.TokenDuration)
	roomService := services.NewRoomService(
		log, roomRepository, historyRepository,
		engine.New(seed), weather.NewGenerator(seed),
		tracker, locks, registry, monitoring, domainEvents,
	)
	authService := services.NewAuthService(userRepository, roomRepository, tokens)
	characterService := services.NewCharacterService(log, characterRepository, roomRepository, domainEvents)

	// 4. Supervision & Workers
	handlers := []event.Handler{event.NewDrawStatsHandler(log, event.NewCounter())}
	fanout := workers.NewEventFanout(log, domainEvents, telemetryEvents, registry, monitoring).
		Add(projection.NewTimeline())

	sup := workers.NewSupervisor(log).Add(
		fanout,
		workers.NewTelemetryWorker(log, telemetryEvents, handlers),
		workers.NewHeartbeatWorker(log, config.HeartbeatInterval, monitoring),
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. WebSocket Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	wsServer := transport.NewServer(log, roomService, authService, characterService,
		monitoring, config.ConnectionBufferSize)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsServer)
	httpServer := &http.Server{Addr: address, Handler: mux}

	// Use an error channel to capture ListenAndServe() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
