package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a connection to a session's event stream and blocks until
// the peer goes away.
func ServeWs(hub *Hub, c *websocket.Conn, sessionId string) {
	client := &Client{Hub: hub, Conn: c, SessionId: sessionId, Send: make(chan []byte, sendBuffer)}
	if !hub.requestRegister(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
