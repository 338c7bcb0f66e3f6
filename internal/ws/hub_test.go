package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	e := echo.New()
	e.GET("/ws", Handler(hub))
	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d connections, got %d", want, hub.Count())
}

func readEvent(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var event struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("invalid event %q: %v", data, err)
	}
	return event.Type
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, srv := newTestServer(t)

	clients := []*websocket.Conn{dial(t, srv), dial(t, srv), dial(t, srv)}
	waitForCount(t, hub, 3)

	hub.Broadcast("students")

	for i, conn := range clients {
		if got := readEvent(t, conn); got != "students" {
			t.Fatalf("client %d: expected \"students\", got %q", i, got)
		}
	}
}

func TestHub_DroppedClientDoesNotBlockOthers(t *testing.T) {
	hub, srv := newTestServer(t)

	gone := dial(t, srv)
	a := dial(t, srv)
	b := dial(t, srv)
	waitForCount(t, hub, 3)

	gone.Close()
	waitForCount(t, hub, 2)

	hub.Broadcast("groups")

	if got := readEvent(t, a); got != "groups" {
		t.Fatalf("expected \"groups\", got %q", got)
	}
	if got := readEvent(t, b); got != "groups" {
		t.Fatalf("expected \"groups\", got %q", got)
	}
}

func TestHub_CloseEmptiesRegistry(t *testing.T) {
	hub, srv := newTestServer(t)

	dial(t, srv)
	dial(t, srv)
	waitForCount(t, hub, 2)

	hub.Close()
	waitForCount(t, hub, 0)
}

func TestHub_HandlerRejectsPlainGET(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/ws")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-upgrade request, got %d", resp.StatusCode)
	}
}
