package net

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// Session is one feed subscriber. Writes run in a dedicated goroutine fed by
// OutQueue; the owning handler blocks in Wait until either side closes.
type Session struct {
	ID uint64
	IP string

	conn         *websocket.Conn
	OutQueue     chan []byte
	writeTimeout time.Duration

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	log *zap.Logger
}

func NewSession(conn *websocket.Conn, id uint64, ip string, outSize int, writeTimeout time.Duration, log *zap.Logger) *Session {
	return &Session{
		ID:           id,
		IP:           ip,
		conn:         conn,
		OutQueue:     make(chan []byte, outSize),
		writeTimeout: writeTimeout,
		closeCh:      make(chan struct{}),
		log:          log.With(zap.Uint64("session", id)),
	}
}

// Start launches the writer goroutine.
func (s *Session) Start() {
	go s.writeLoop()
}

// Send queues a message. A full queue means the peer is too slow; the
// session is closed instead of blocking the sender.
func (s *Session) Send(data []byte) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.OutQueue <- data:
		return true
	default:
		s.log.Warn("feed queue full, dropping slow subscriber")
		s.Close()
		return false
	}
}

// Wait blocks until the peer disconnects, ctx ends, or Close is called.
// Incoming messages are discarded.
func (s *Session) Wait(ctx context.Context) {
	readCtx := s.conn.CloseRead(ctx)
	select {
	case <-readCtx.Done():
	case <-s.closeCh:
	}
}

// Close marks the session dead and stops the writer. The connection itself
// is closed by the goroutine that owns it.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.closeCh)
	})
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

func (s *Session) writeLoop() {
	for {
		select {
		case <-s.closeCh:
			return
		case data := <-s.OutQueue:
			ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
			err := s.conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				s.log.Debug("feed write failed", zap.Error(err))
				s.Close()
				return
			}
		}
	}
}
