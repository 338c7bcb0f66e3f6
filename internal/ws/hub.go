// Package ws implements the live-update notification channel: a registry
// of WebSocket connections that receives a {"type": resource} message
// whenever a resource is mutated. Delivery is best-effort; a connection
// that errors or misses a liveness probe is dropped without affecting the
// rest of the registry.
package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fpdual/dual-admin/internal/api/metrics"
)

const (
	// pingInterval matches the original heartbeat: ping every 30s, drop
	// connections that have not answered within pongWait.
	pingInterval = 30 * time.Second
	pongWait     = 35 * time.Second
	writeWait    = 10 * time.Second
)

type changeEvent struct {
	Type string `json:"type"`
}

type connection struct {
	ws *websocket.Conn

	// writeMu serialises writes; gorilla/websocket permits at most one
	// concurrent writer per connection.
	writeMu sync.Mutex

	// alive is reset by the ping loop and set again by the pong handler.
	// Guarded by Hub.mu.
	alive bool
}

func (c *connection) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(messageType, data)
}

// Hub owns the set of live connections. It is constructed once and
// injected into whatever needs to broadcast; there is no package-level
// registry.
type Hub struct {
	log zerolog.Logger

	mu    sync.Mutex
	conns map[*connection]struct{}

	pingEvery time.Duration
	pongWait  time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:       log,
		conns:     make(map[*connection]struct{}),
		pingEvery: pingInterval,
		pongWait:  pongWait,
		stop:      make(chan struct{}),
	}
}

// Run drives the liveness loop until Close is called. Call it from its
// own goroutine.
func (h *Hub) Run() {
	ticker := time.NewTicker(h.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			h.probe()
		}
	}
}

// Register adds a connection to the live set and starts its read loop.
// The read loop exists to surface pongs and close frames; inbound data
// messages are discarded.
func (h *Hub) Register(wsConn *websocket.Conn) {
	conn := &connection{ws: wsConn, alive: true}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	metrics.WebsocketConnections.Set(float64(n))

	_ = wsConn.SetReadDeadline(time.Now().Add(h.pongWait))
	wsConn.SetPongHandler(func(string) error {
		h.mu.Lock()
		conn.alive = true
		h.mu.Unlock()
		return wsConn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	go h.readLoop(conn)
}

// Broadcast sends the resource tag to every live connection. Connections
// whose write fails are dropped; the remaining connections still receive
// the message. Partial delivery is expected, not an error.
func (h *Hub) Broadcast(resource string) {
	data, err := marshalEvent(resource)
	if err != nil {
		h.log.Error().Err(err).Str("resource", resource).Msg("encode broadcast")
		return
	}

	for _, conn := range h.snapshot() {
		if err := conn.write(websocket.TextMessage, data); err != nil {
			h.log.Debug().Err(err).Msg("broadcast write failed, dropping connection")
			h.remove(conn)
		}
	}
	metrics.BroadcastsTotal.WithLabelValues(resource).Inc()
}

// Count returns the current registry size.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close stops the liveness loop and closes every connection.
func (h *Hub) Close() {
	h.stopOnce.Do(func() { close(h.stop) })
	for _, conn := range h.snapshot() {
		h.remove(conn)
	}
}

// probe drops connections that missed the previous ping, then pings the
// rest. A connection gets one full interval to answer before it is
// considered dead.
func (h *Hub) probe() {
	h.mu.Lock()
	stale := make([]*connection, 0)
	live := make([]*connection, 0, len(h.conns))
	for conn := range h.conns {
		if !conn.alive {
			stale = append(stale, conn)
			continue
		}
		conn.alive = false
		live = append(live, conn)
	}
	h.mu.Unlock()

	for _, conn := range stale {
		h.log.Debug().Msg("connection missed liveness probe, closing")
		h.remove(conn)
	}
	for _, conn := range live {
		if err := conn.write(websocket.PingMessage, nil); err != nil {
			h.remove(conn)
		}
	}
}

func (h *Hub) readLoop(conn *connection) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// snapshot copies the live set so broadcast iteration tolerates
// concurrent removal.
func (h *Hub) snapshot() []*connection {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := make([]*connection, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	return conns
}

func (h *Hub) remove(conn *connection) {
	h.mu.Lock()
	_, present := h.conns[conn]
	delete(h.conns, conn)
	n := len(h.conns)
	h.mu.Unlock()

	if present {
		metrics.WebsocketConnections.Set(float64(n))
		_ = conn.ws.Close()
	}
}
