package e2e

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"tokenbag/transport"
)

const readTimeout = 10 * time.Second

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// WsConn opens a websocket connection with logging and colorized step headers.
// The suite is skipped when no server listens at SERVER_ADDR.
func (s *BaseWsSuite) WsConn(t *testing.T, name string) *WsClient {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	url := fmt.Sprintf("ws://%s/ws", s.Config.ServerAddr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Skipf("No server reachable at %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &WsClient{t: t, conn: conn, debugJSON: s.Config.DebugJSON}
}

// WsClient wraps one player connection with send/expect helpers.
type WsClient struct {
	t         *testing.T
	conn      *websocket.Conn
	debugJSON bool
}

// Send frames the payload into an envelope and writes it.
func (c *WsClient) Send(event string, payload any) {
	c.t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		c.t.Fatalf("marshal %s payload: %v", event, err)
	}
	env := transport.Envelope{Event: event, Data: data}
	if c.debugJSON {
		c.t.Logf("SEND %s: %s", event, data)
	}
	if err := c.conn.WriteJSON(env); err != nil {
		c.t.Fatalf("write %s: %v", event, err)
	}
}

// Expect reads frames until the named event arrives, skipping unrelated
// broadcasts. An error frame or a timeout fails the test.
func (c *WsClient) Expect(event string) json.RawMessage {
	c.t.Helper()
	deadline := time.Now().Add(readTimeout)
	for {
		_ = c.conn.SetReadDeadline(deadline)
		var env transport.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			c.t.Fatalf("waiting for %s: %v", event, err)
		}
		if c.debugJSON {
			c.t.Logf("RECV %s: %s", env.Event, env.Data)
		}
		switch env.Event {
		case event:
			return env.Data
		case transport.EvError:
			c.t.Fatalf("waiting for %s, got error frame: %s", event, env.Data)
		}
	}
}

// ExpectError reads frames until an error of the given kind arrives.
func (c *WsClient) ExpectError(kind string) {
	c.t.Helper()
	data := c.expectEvent(transport.EvError)

	var payload struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		c.t.Fatalf("decode error frame: %v", err)
	}
	if payload.Kind != kind {
		c.t.Fatalf("expected error kind %q, got %q", kind, payload.Kind)
	}
}

func (c *WsClient) expectEvent(event string) json.RawMessage {
	c.t.Helper()
	deadline := time.Now().Add(readTimeout)
	for {
		_ = c.conn.SetReadDeadline(deadline)
		var env transport.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			c.t.Fatalf("waiting for %s: %v", event, err)
		}
		if c.debugJSON {
			c.t.Logf("RECV %s: %s", env.Event, env.Data)
		}
		if env.Event == event {
			return env.Data
		}
	}
}
