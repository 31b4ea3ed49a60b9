package server

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/blogforge/blogforge/pkg/agents"
)

// Event is the notification payload pushed to websocket clients when a
// generation run finishes.
type Event struct {
	Event     string         `json:"event"`
	RequestID string         `json:"request_id"`
	Result    *agents.Result `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

const (
	eventGenerationComplete = "generation_complete"
	eventGenerationError    = "generation_error"

	broadcastTimeout = 5 * time.Second
)

// hub fans events out to connected websocket clients.
type hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

func newHub() *hub {
	return &hub{clients: make(map[string]*websocket.Conn)}
}

func (h *hub) add(conn *websocket.Conn) string {
	id := xid.New().String()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	return id
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// broadcast writes the event to every connected client. Slow or broken
// clients are skipped after broadcastTimeout; delivery is best effort.
func (h *hub) broadcast(ctx context.Context, event Event) {
	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.clients))
	for id, conn := range h.clients {
		conns[id] = conn
	}
	h.mu.RUnlock()

	log := zerolog.Ctx(ctx)
	for id, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, broadcastTimeout)
		err := wsjson.Write(writeCtx, conn, event)
		cancel()
		if err != nil {
			log.Debug().Err(err).Str("client_id", id).Msg("dropping websocket client")
			h.remove(id)
			_ = conn.Close(websocket.StatusAbnormalClosure, "write failed")
		}
	}
}
