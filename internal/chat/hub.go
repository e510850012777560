package chat

import (
	"log"
	"sync"
)

// Hub tracks connected chat clients. Unlike a broadcast hub, replies go only
// to the client that asked; the hub exists for registration bookkeeping and
// connection counts.
type Hub struct {
	clients map[*Client]bool
	mutex   sync.RWMutex
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		logger:  logger,
	}
}

func (h *Hub) register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Printf("chat connected | total_clients=%d", total)
	}
}

func (h *Hub) unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Printf("chat disconnected | total_clients=%d", total)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
