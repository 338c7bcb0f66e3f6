package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is served behind the SPA's origin in deployment; the
	// notification stream carries no data beyond resource tags, so
	// cross-origin upgrades are accepted like the original server did.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades GET /ws requests and hands the connection to the hub.
func Handler(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			return nil
		}
		hub.Register(conn)
		return nil
	}
}

func marshalEvent(resource string) ([]byte, error) {
	return json.Marshal(changeEvent{Type: resource})
}
