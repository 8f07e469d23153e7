//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"tokenbag/contract"
	"tokenbag/domain"
	"tokenbag/domain/event"
	"tokenbag/engine"
	"tokenbag/errors"
	"tokenbag/observability"
	"tokenbag/repositories"
	"tokenbag/runtime"
	"tokenbag/weather"
)

// historyOnJoin is how many recent draws a joining player receives.
const historyOnJoin = 20

type IRoomService interface {
	CreateRoom(ctx context.Context, ownerID, playerName string) (domain.Room, error)
	JoinRoom(ctx context.Context, cmd JoinRoomCommand) (JoinRoomResult, error)
	ConfigureBag(ctx context.Context, room domain.RoomID, bag domain.Bag) (domain.Bag, error)
	AddHelp(ctx context.Context, room domain.RoomID, helper string) (domain.Bag, error)
	Draw(ctx context.Context, request domain.DrawRequest) (domain.DrawResult, error)
	RiskAll(ctx context.Context, request domain.RiskAllRequest) (domain.RiskAllResult, error)
	ReturnTokens(ctx context.Context, room domain.RoomID, successes, complications int) (domain.Bag, error)
	ResetBag(ctx context.Context, room domain.RoomID) error
	UpdateAdrenaline(ctx context.Context, room domain.RoomID, playerName string, value int) error
	UpdateConfusion(ctx context.Context, room domain.RoomID, playerName string, value int) error
	GenerateWeather(ctx context.Context, room domain.RoomID, playerName, season, zone string) (weather.Report, bool, error)
	Subscribe(participantID string, room domain.RoomID, sink contract.EventSink)
	Unsubscribe(participantID string, room domain.RoomID)
}

// JoinRoomCommand identifies who wants in. UserID is empty for guests.
type JoinRoomCommand struct {
	Room       domain.RoomID
	PlayerName string
	UserID     string
}

// JoinRoomResult is the caller-only snapshot sent on a successful join.
type JoinRoomResult struct {
	Room    domain.Room
	Players []domain.Player
	Master  bool
	// Recent draws, oldest first, capped at historyOnJoin.
	History []domain.HistoryRecord
}

// RoomService is the coordinator: it resolves the room, serializes every
// read-modify-write under the room's mutex, runs the engine, commits, and
// only then emits the broadcast event. Failures stay with the caller.
type RoomService struct {
	log        *slog.Logger
	rooms      repositories.IRoomRepository
	history    repositories.IHistoryRepository
	engine     *engine.Engine
	weather    *weather.Generator
	tracker    *runtime.Tracker
	locks      *runtime.RoomLocks
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	events     chan<- event.DomainEvent
}

func NewRoomService(
	log *slog.Logger,
	rooms repositories.IRoomRepository,
	history repositories.IHistoryRepository,
	drawEngine *engine.Engine,
	weatherGen *weather.Generator,
	tracker *runtime.Tracker,
	locks *runtime.RoomLocks,
	registry contract.IRegistry,
	monitoring *observability.MonitoringManager,
	events chan<- event.DomainEvent,
) IRoomService {
	return &RoomService{
		log:        log,
		rooms:      rooms,
		history:    history,
		engine:     drawEngine,
		weather:    weatherGen,
		tracker:    tracker,
		locks:      locks,
		registry:   registry,
		monitoring: monitoring,
		events:     events,
	}
}

// CreateRoom opens a fresh table with an empty bag. The creator joins
// immediately as master.
func (s *RoomService) CreateRoom(_ context.Context, ownerID, playerName string) (domain.Room, error) {
	if playerName == "" {
		return domain.Room{}, errors.ErrInvalidRequest
	}

	now := time.Now().UTC()
	room := domain.Room{
		// Short ids are friendlier to read out loud at the table.
		ID:        domain.RoomID(uuid.New().String()[:8]),
		OwnerID:   ownerID,
		Active:    true,
		CreatedAt: now,
	}
	creator := domain.Player{Name: playerName, UserID: ownerID, Master: true, JoinedAt: now}

	if err := s.rooms.CreateRoom(room, creator); err != nil {
		return domain.Room{}, err
	}
	s.monitoring.IncrRoomsCreated()
	s.log.Info("Room created", "room", room.ID, "master", playerName)
	return room, nil
}

// JoinRoom adds a player to the roster. Re-joining under the same name
// and identity is a no-op; the same name under a different identity is
// rejected. The result carries the roster and the recent draw history.
func (s *RoomService) JoinRoom(_ context.Context, cmd JoinRoomCommand) (JoinRoomResult, error) {
	if cmd.PlayerName == "" {
		return JoinRoomResult{}, errors.ErrInvalidRequest
	}

	lock := s.locks.For(cmd.Room)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.activeRoom(cmd.Room)
	if err != nil {
		return JoinRoomResult{}, err
	}

	players, err := s.rooms.Players(cmd.Room)
	if err != nil {
		return JoinRoomResult{}, err
	}

	existing, found := lo.Find(players, func(p domain.Player) bool {
		return p.Name == cmd.PlayerName
	})

	isMaster := existing.Master
	switch {
	case found && existing.UserID == cmd.UserID:
		// Same identity re-joining, keep the roster as is.
	case found:
		return JoinRoomResult{}, errors.ErrDuplicateName
	case len(players) >= domain.MaxPlayersPerRoom:
		return JoinRoomResult{}, errors.ErrRoomFull
	default:
		player := domain.Player{Name: cmd.PlayerName, UserID: cmd.UserID, JoinedAt: time.Now().UTC()}
		if err := s.rooms.AddPlayer(cmd.Room, player); err != nil {
			return JoinRoomResult{}, err
		}
		players = append(players, player)
	}

	recent, err := s.history.Recent(cmd.Room, historyOnJoin)
	if err != nil {
		return JoinRoomResult{}, err
	}
	lo.Reverse(recent) // oldest first for replay

	s.dispatch(event.PlayerJoined{
		Room:       cmd.Room,
		PlayerName: cmd.PlayerName,
		Players:    playerNames(players),
	})

	return JoinRoomResult{Room: room, Players: players, Master: isMaster, History: recent}, nil
}

// ConfigureBag sets both counters to absolute values.
func (s *RoomService) ConfigureBag(_ context.Context, roomID domain.RoomID, bag domain.Bag) (domain.Bag, error) {
	if bag.Successes < 0 || bag.Complications < 0 {
		return domain.Bag{}, errors.ErrInvalidRequest
	}

	lock := s.locks.For(roomID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.activeRoom(roomID); err != nil {
		return domain.Bag{}, err
	}
	if err := s.rooms.SaveBag(roomID, bag); err != nil {
		return domain.Bag{}, err
	}

	s.dispatch(event.BagConfigured{Room: roomID, Bag: bag})
	return bag, nil
}

// AddHelp drops one extra success token into the bag.
func (s *RoomService) AddHelp(_ context.Context, roomID domain.RoomID, helper string) (domain.Bag, error) {
	lock := s.locks.For(roomID)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.activeRoom(roomID)
	if err != nil {
		return domain.Bag{}, err
	}

	bag := room.Bag
	bag.Successes++
	if err := s.rooms.SaveBag(roomID, bag); err != nil {
		return domain.Bag{}, err
	}

	s.dispatch(event.HelpAdded{Room: roomID, Helper: helper, Bag: bag})
	return bag, nil
}

// Draw runs one draw under the room lock and commits the new bag plus the
// ledger entry atomically before anyone hears about it.
func (s *RoomService) Draw(_ context.Context, request domain.DrawRequest) (domain.DrawResult, error) {
	lock := s.locks.For(request.Room)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.activeRoom(request.Room)
	if err != nil {
		return domain.DrawResult{}, err
	}

	result, err := s.engine.Draw(room.Bag, request)
	if err != nil {
		return domain.DrawResult{}, err
	}

	record := newRecord(request.Room, request.PlayerName, result, request.Adrenaline, request.Confusion, false)
	room.Bag = result.Bag
	if err := s.rooms.CommitDraw(room, record); err != nil {
		return domain.DrawResult{}, err
	}

	s.monitoring.IncrDrawsCommitted()
	s.dispatch(event.TokensDrawn{Room: request.Room, Record: record, Bag: result.Bag})
	return result, nil
}

// RiskAll is the escalating variant: plain sampling, caller-supplied
// running totals echoed back, only the per-call delta is persisted.
func (s *RoomService) RiskAll(_ context.Context, request domain.RiskAllRequest) (domain.RiskAllResult, error) {
	lock := s.locks.For(request.Room)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.activeRoom(request.Room)
	if err != nil {
		return domain.RiskAllResult{}, err
	}

	result, err := s.engine.RiskAll(room.Bag, request)
	if err != nil {
		return domain.RiskAllResult{}, err
	}

	record := newRecord(request.Room, request.PlayerName, result.DrawResult, false, false, true)
	room.Bag = result.Bag
	if err := s.rooms.CommitDraw(room, record); err != nil {
		return domain.RiskAllResult{}, err
	}

	s.monitoring.IncrDrawsCommitted()
	s.dispatch(event.RiskAllResolved{
		Room:               request.Room,
		Record:             record,
		Bag:                result.Bag,
		TotalSuccesses:     result.TotalSuccesses,
		TotalComplications: result.TotalComplications,
	})
	return result, nil
}

// ReturnTokens puts tokens back into the bag (deltas, not absolutes).
func (s *RoomService) ReturnTokens(_ context.Context, roomID domain.RoomID, successes, complications int) (domain.Bag, error) {
	if successes < 0 || complications < 0 {
		return domain.Bag{}, errors.ErrInvalidRequest
	}

	lock := s.locks.For(roomID)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.activeRoom(roomID)
	if err != nil {
		return domain.Bag{}, err
	}

	bag := room.Bag
	bag.Successes += successes
	bag.Complications += complications
	if err := s.rooms.SaveBag(roomID, bag); err != nil {
		return domain.Bag{}, err
	}

	s.dispatch(event.TokensReturned{Room: roomID, Bag: bag})
	return bag, nil
}

// ResetBag zeroes both counters. Adrenaline and confusion are player
// state, not bag state, so the tracker is untouched.
func (s *RoomService) ResetBag(_ context.Context, roomID domain.RoomID) error {
	lock := s.locks.For(roomID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.activeRoom(roomID); err != nil {
		return err
	}
	if err := s.rooms.SaveBag(roomID, domain.Bag{}); err != nil {
		return err
	}

	s.dispatch(event.BagReset{Room: roomID})
	return nil
}

// UpdateAdrenaline records the transient value and mirrors it to the room.
func (s *RoomService) UpdateAdrenaline(_ context.Context, roomID domain.RoomID, playerName string, value int) error {
	if _, err := s.activeRoom(roomID); err != nil {
		return err
	}
	s.tracker.SetAdrenaline(roomID, playerName, value)
	s.dispatch(event.AdrenalineUpdated{Room: roomID, PlayerName: playerName, Value: value})
	return nil
}

// UpdateConfusion records the transient value and mirrors it to the room.
func (s *RoomService) UpdateConfusion(_ context.Context, roomID domain.RoomID, playerName string, value int) error {
	if _, err := s.activeRoom(roomID); err != nil {
		return err
	}
	s.tracker.SetConfusion(roomID, playerName, value)
	s.dispatch(event.ConfusionUpdated{Room: roomID, PlayerName: playerName, Value: value})
	return nil
}

// GenerateWeather rolls a forecast. The room is optional: with a live
// room the forecast is broadcast to the table (shared=true), otherwise
// it stays with the caller.
func (s *RoomService) GenerateWeather(_ context.Context, roomID domain.RoomID, playerName, season, zone string) (weather.Report, bool, error) {
	report, err := s.weather.Generate(season, zone)
	if err != nil {
		return weather.Report{}, false, err
	}

	if roomID == "" {
		return report, false, nil
	}
	if _, err := s.activeRoom(roomID); err != nil {
		// An unknown room does not spoil the forecast
		return report, false, nil
	}

	s.dispatch(event.WeatherGenerated{
		Room:       roomID,
		PlayerName: playerName,
		Season:     report.Season,
		Zone:       report.Zone,
		Weather:    report.Weather,
	})
	return report, true, nil
}

func (s *RoomService) Subscribe(participantID string, room domain.RoomID, sink contract.EventSink) {
	s.registry.Subscribe(participantID, room, sink)
}

func (s *RoomService) Unsubscribe(participantID string, room domain.RoomID) {
	s.registry.Unsubscribe(participantID, room)
}

// activeRoom resolves a live room or fails with ErrRoomNotFound.
func (s *RoomService) activeRoom(roomID domain.RoomID) (domain.Room, error) {
	room, err := s.rooms.GetRoom(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if !room.Active {
		return domain.Room{}, errors.ErrRoomNotFound
	}
	return room, nil
}

// dispatch hands the event to the fanout channel without ever blocking
// the table. A full channel means observers lose the event, not players.
func (s *RoomService) dispatch(evt event.DomainEvent) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping broadcast", "room", evt.RoomID())
		s.monitoring.IncrEventsDropped()
	}
}

func newRecord(room domain.RoomID, playerName string, result domain.DrawResult, adrenaline, confusion, riskAll bool) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:            uuid.New(),
		Room:          room,
		PlayerName:    playerName,
		Drawn:         result.Drawn,
		Successes:     result.Successes,
		Complications: result.Complications,
		Adrenaline:    adrenaline,
		Confusion:     confusion,
		RiskAll:       riskAll,
		At:            time.Now().UTC(),
	}
}

func playerNames(players []domain.Player) []string {
	return lo.Map(players, func(p domain.Player, _ int) string { return p.Name })
}
