package preview

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// hub tracks connected reload clients.
type hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	// writeMu serializes broadcasts. A gorilla connection supports one
	// concurrent writer, and overlapping debounced rebuilds would
	// otherwise interleave WriteMessage calls on the same connection.
	writeMu sync.Mutex

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub(log *slog.Logger) *hub {
	return &hub{
		log: log.With("component", "preview.ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 512,
			// The preview server is a local dev tool; cross-origin
			// pages on the same host are fine.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// handleWS upgrades the connection and keeps it registered until the
// browser goes away.
func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain reads; the client never sends anything meaningful, but the
	// read loop notices the close.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends a message to every connected client, dropping the ones
// that fail.
func (h *hub) broadcast(msg []byte) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.drop(conn)
		}
	}
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}
