package notifications

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans notification updates out to connected admin sessions.
type Hub struct {
	mu      sync.RWMutex
	nextID  int
	clients map[int]*websocket.Conn
}

// Update is the payload pushed whenever the read-set changes or the poller
// refreshes its snapshot. Clients re-fetch the full list themselves.
type Update struct {
	UnreadCount int   `json:"unread_count"`
	Total       int   `json:"total"`
	Sequence    int64 `json:"sequence"`
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int]*websocket.Conn)}
}

// Add registers a connection and returns its id for later removal.
func (h *Hub) Add(conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.clients[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.clients[id]; ok {
		_ = conn.Close()
		delete(h.clients, id)
	}
}

// Broadcast writes the update to every client, dropping those whose
// connection has gone away.
func (h *Hub) Broadcast(u Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteJSON(u); err != nil {
			log.Printf("[NOTIFICATIONS] ws client %d dropped: %v", id, err)
			_ = conn.Close()
			delete(h.clients, id)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
