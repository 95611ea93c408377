package service

import (
	"sync"

	"enoki-admin/core/logger"
	"enoki-admin/modules/rfid/entity"

	"github.com/gorilla/websocket"
)

// Hub fans badge events out to dashboard websocket subscribers so open forms
// see scans live without polling.
type Hub struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[conn] = struct{}{}
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, conn)
}

// Broadcast writes the event to every subscriber, dropping dead connections
func (h *Hub) Broadcast(evt entity.BadgeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.subs {
		if err := conn.WriteJSON(evt); err != nil {
			logger.Debug("Dropping dead live-feed subscriber", "error", err)
			_ = conn.Close()
			delete(h.subs, conn)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
