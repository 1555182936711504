package net

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// Hub tracks live websocket sessions and fans messages out to them.
type Hub struct {
	mu       sync.Mutex
	sessions map[uint64]*Session
	nextID   atomic.Uint64

	outSize      int
	writeTimeout time.Duration
	log          *zap.Logger
}

func NewHub(outSize int, writeTimeout time.Duration, log *zap.Logger) *Hub {
	if outSize <= 0 {
		outSize = 1
	}
	return &Hub{
		sessions:     make(map[uint64]*Session),
		outSize:      outSize,
		writeTimeout: writeTimeout,
		log:          log,
	}
}

// Serve upgrades the request, sends hello (if any) and blocks until the
// session ends.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, hello []byte) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // the game client is not a browser page
	})
	if err != nil {
		h.log.Warn("websocket accept failed", zap.Error(err))
		return
	}

	id := h.nextID.Add(1)
	sess := NewSession(conn, id, r.RemoteAddr, h.outSize, h.writeTimeout, h.log)
	h.add(sess)
	sess.Start()
	h.log.Info("feed subscriber joined", zap.Uint64("session", id), zap.String("ip", sess.IP))

	if hello != nil {
		sess.Send(hello)
	}
	sess.Wait(r.Context())

	sess.Close()
	h.remove(id)
	conn.Close(websocket.StatusNormalClosure, "")
	h.log.Info("feed subscriber left", zap.Uint64("session", id))
}

// Broadcast queues data on every session and returns how many accepted it.
func (h *Hub) Broadcast(data []byte) int {
	h.mu.Lock()
	targets := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	n := 0
	for _, s := range targets {
		if s.Send(data) {
			n++
		}
	}
	return n
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll ends every session; their Serve calls return shortly after.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.sessions {
		s.Close()
	}
}

func (h *Hub) add(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}
