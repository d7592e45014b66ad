// Package ws pushes job-status updates to subscribed clients over
// WebSocket, grounded on the teacher's internal/handler ConnectionManager
// and WebSocketHandler: the same register/unregister channel pattern
// feeding a single run loop, the same per-client buffered send channel.
package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"escp2render/internal/jobqueue"
)

// Client is one subscribed WebSocket connection, optionally filtered to
// a single job — the render-domain analogue of the teacher's Client
// (device/events/operations/branch scoping collapses to a single
// optional JobID filter here, since jobs are this domain's only
// trackable entity).
type Client struct {
	ID          string
	Conn        *websocket.Conn
	Send        chan []byte
	JobID       *uuid.UUID
	ConnectedAt time.Time
}

// Update is one status-change notification broadcast to clients.
type Update struct {
	JobID     uuid.UUID      `json:"job_id"`
	Status    jobqueue.Status `json:"status"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Hub manages subscribed clients and fans out job status updates to
// them, mirroring the teacher's ConnectionManager.run select loop.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Update
	mutex      sync.RWMutex
}

// NewHub starts a Hub's run loop and returns it.
func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Update, 64),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.ID] = c
			h.mutex.Unlock()

		case c := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				close(c.Send)
			}
			h.mutex.Unlock()

		case update := <-h.broadcast:
			h.deliver(update)
		}
	}
}

func (h *Hub) deliver(update Update) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	payload := encode(update)
	for _, c := range h.clients {
		if c.JobID != nil && *c.JobID != update.JobID {
			continue
		}
		select {
		case c.Send <- payload:
		default:
			// slow consumer: drop rather than block the broadcast loop
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) { h.register <- c }

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Publish queues a status update for delivery to subscribed clients.
func (h *Hub) Publish(update Update) { h.broadcast <- update }

// ClientCount returns the number of currently registered clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
