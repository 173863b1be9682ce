package broadcast

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientSendBuf = 256
	writeDeadline = 5 * time.Second
	pongWait      = 30 * time.Second
	pingInterval  = 20 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type viewer struct {
	matchID string // empty follows every match
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
}

// Hub fans match messages out to connected websocket viewers.
type Hub struct {
	mu      sync.Mutex
	viewers map[*viewer]struct{}
	closed  bool
}

func NewHub() *Hub {
	return &Hub{viewers: make(map[*viewer]struct{})}
}

// Publish enqueues msg to every interested viewer without blocking. Slow
// viewers miss messages rather than stall the scorer.
func (h *Hub) Publish(_ context.Context, msg Message) error {
	data, err := msg.encode()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		if v.matchID != "" && v.matchID != msg.MatchID {
			continue
		}
		select {
		case v.send <- data:
		default:
			log.Printf("broadcast: dropping %s for slow viewer of %q", msg.Type, v.matchID)
		}
	}
	return nil
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// HandleWS upgrades a viewer connection. ?match=<id> limits the stream to
// one match.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("broadcast: upgrade failed: %v", err)
		return
	}

	v := &viewer{
		matchID: r.URL.Query().Get("match"),
		conn:    conn,
		send:    make(chan []byte, clientSendBuf),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.viewers[v] = struct{}{}
	h.mu.Unlock()

	go h.writePump(v)
	go h.readPump(v)
}

// writePump owns the connection: it removes the viewer and closes the
// socket on exit.
func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.remove(v)
		v.conn.Close()
	}()

	for {
		select {
		case msg := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-v.done:
			return
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only services pongs and close frames; viewers send nothing.
func (h *Hub) readPump(v *viewer) {
	defer close(v.done)

	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	delete(h.viewers, v)
	h.mu.Unlock()
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	viewers := make([]*viewer, 0, len(h.viewers))
	for v := range h.viewers {
		viewers = append(viewers, v)
	}
	h.mu.Unlock()

	for _, v := range viewers {
		v.conn.Close()
	}
}
