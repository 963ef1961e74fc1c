package events

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/msuss/atelier/internal/domain"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	broadcastQueue = 64
)

// Hub keeps the set of connected websocket viewers and broadcasts events to
// them. A viewer that cannot keep up is disconnected.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	clients    map[*websocket.Conn]bool
	broadcast  chan domain.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan domain.Event, broadcastQueue),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		stopCh:     make(chan struct{}),
	}
}

// Start runs the hub loop in a background goroutine.
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.run()
	}()
}

// Stop closes every client and waits for the loop to exit.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("viewer connected", zap.String("remote", client.RemoteAddr().String()))

		case client := <-h.unregister:
			h.drop(client)

		case event := <-h.broadcast:
			for _, client := range h.snapshot() {
				_ = client.SetWriteDeadline(time.Now().Add(writeWait))
				if err := client.WriteJSON(event); err != nil {
					h.logger.Debug("websocket write failed", zap.Error(err))
					h.drop(client)
				}
			}

		case <-h.stopCh:
			for _, client := range h.snapshot() {
				h.drop(client)
			}
			return
		}
	}
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

func (h *Hub) drop(client *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		_ = client.Close()
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues e for broadcast. When the queue is full the event is
// dropped rather than blocking the caller.
func (h *Hub) Publish(_ context.Context, e domain.Event) {
	select {
	case h.broadcast <- e:
	default:
		h.logger.Warn("event queue full, dropping event", zap.String("type", string(e.Type)))
	}
}

// ServeHTTP upgrades the request and keeps the viewer registered until it
// disconnects. Viewers only receive; anything they send is discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	select {
	case h.register <- conn:
	case <-h.stopCh:
		_ = conn.Close()
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- conn:
	case <-h.stopCh:
	}
}
