// Package transport exposes the websocket event surface. One goroutine
// reads commands per connection, one writes; broadcasts arrive through
// the connection's sink, caller-only replies through its out channel.
package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tokenbag/domain"
	"tokenbag/observability"
	"tokenbag/services"
)

const writeTimeout = 10 * time.Second

// Server upgrades HTTP requests and drives the per-connection loops.
type Server struct {
	log              *slog.Logger
	roomService      services.IRoomService
	authService      services.IAuthService
	characterService services.ICharacterService
	monitoring       *observability.MonitoringManager
	bufferSize       int
	upgrader         websocket.Upgrader
}

func NewServer(
	log *slog.Logger,
	roomService services.IRoomService,
	authService services.IAuthService,
	characterService services.ICharacterService,
	monitoring *observability.MonitoringManager,
	bufferSize int,
) *Server {
	return &Server{
		log:              log,
		roomService:      roomService,
		authService:      authService,
		characterService: characterService,
		monitoring:       monitoring,
		bufferSize:       bufferSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The page is served from anywhere; the token is the gate.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// session is the per-connection state built up by auth and join events.
type session struct {
	id         string
	userID     string
	username   string
	playerName string
	room       domain.RoomID
	sink       *ConnSink
	out        chan Envelope
}

// ServeHTTP upgrades the connection and blocks until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sess := &session{
		id:   uuid.NewString(),
		sink: NewConnSink(s.bufferSize),
		out:  make(chan Envelope, s.bufferSize),
	}
	s.monitoring.ConnectionOpened()
	defer s.monitoring.ConnectionClosed()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go s.writeLoop(ctx, conn, sess)
	s.readLoop(ctx, conn, sess)

	if sess.room != "" {
		s.roomService.Unsubscribe(sess.id, sess.room)
	}
}

// readLoop parses inbound envelopes and dispatches them one at a time,
// preserving per-connection command order.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, sess *session) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("Connection closed unexpectedly", "session", sess.id, "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			s.sendError(sess, errInvalidEnvelope)
			continue
		}
		s.dispatch(ctx, sess, env)
	}
}

// writeLoop is the single writer of the connection. It merges caller
// replies and room broadcasts; exiting on the first write error lets the
// read side observe the closed connection.
func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, sess *session) {
	for {
		var env Envelope
		var ok bool

		select {
		case <-ctx.Done():
			return
		case env = <-sess.out:
			ok = true
		case evt := <-sess.sink.Events:
			env, ok = translate(evt)
		}
		if !ok {
			continue
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(env); err != nil {
			s.log.Debug("Write failed, closing", "session", sess.id, "error", err)
			_ = conn.Close()
			return
		}
	}
}

// send queues a caller-only reply; a stalled connection loses it.
func (s *Server) send(sess *session, name string, payload any) {
	env, ok := envelope(name, payload)
	if !ok {
		return
	}
	select {
	case sess.out <- env:
	default:
		s.log.Warn("Out channel full, dropping reply", "session", sess.id, "event", name)
	}
}
