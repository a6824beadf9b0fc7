package web

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout    = 5 * time.Second
	clientSendDepth = 8
)

// Hub fans timer state frames out to connected websocket clients. Each
// client gets a buffered send channel and its own write goroutine; a slow
// or broken client is dropped, never waited on.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Attach adopts an upgraded connection. It blocks until the peer goes
// away, then cleans the client up.
func (hub *Hub) Attach(conn *websocket.Conn) {
	member := &client{
		conn: conn,
		send: make(chan []byte, clientSendDepth),
	}

	hub.mu.Lock()
	hub.clients[member] = struct{}{}
	hub.mu.Unlock()

	go member.writePump()

	// Reads are discarded; the protocol is push-only. A read error is
	// how we learn the peer disconnected.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	hub.drop(member)
}

// Broadcast queues a frame for every connected client.
func (hub *Hub) Broadcast(frame []byte) {
	hub.mu.Lock()
	for member := range hub.clients {
		select {
		case member.send <- frame:
		default:
			// Full buffer means the writer is stuck; let the
			// write pump die and the read loop reap the client.
		}
	}
	hub.mu.Unlock()
}

// Count returns the number of connected clients.
func (hub *Hub) Count() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.clients)
}

// Close disconnects all clients.
func (hub *Hub) Close() {
	hub.mu.Lock()
	clients := make([]*client, 0, len(hub.clients))
	for member := range hub.clients {
		clients = append(clients, member)
	}
	hub.mu.Unlock()

	for _, member := range clients {
		hub.drop(member)
	}
}

func (hub *Hub) drop(member *client) {
	hub.mu.Lock()
	_, present := hub.clients[member]
	delete(hub.clients, member)
	hub.mu.Unlock()

	if present {
		close(member.send)
		_ = member.conn.Close()
	}
}

func (member *client) writePump() {
	for frame := range member.send {
		_ = member.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := member.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Debug("websocket write failed", "err", err)
			return
		}
	}
}
