package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
)

// Event names pushed to console tabs.
const (
	EventResourceChanged = "resource.changed"
	EventKYCResults      = "kyc.results"
	EventKYCSearch       = "kyc.search"
)

// Conn is the write side of a websocket connection.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{clients: make(map[string]*client), log: log.With(zap.String("component", "ws_hub"))}
}

// client serializes writes to one console tab.
type client struct {
	conn  Conn
	email string
	mu    sync.Mutex
}

// Register tracks a console tab under its connection id.
func (h *Hub) Register(connID, email string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[connID]; ok {
		old.conn.Close()
	}
	h.clients[connID] = &client{conn: conn, email: email}
}

func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[connID]; ok {
		c.conn.Close()
		delete(h.clients, connID)
	}
}

// Connected returns the number of open tabs.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Notify sends a typed event payload to one tab if connected.
func (h *Hub) Notify(connID string, event string, payload any) error {
	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		h.log.Debug("tab not connected, dropping event", zap.String("conn_id", connID), zap.String("event", event))
		return nil
	}
	return h.write(connID, c, event, payload)
}

// Broadcast sends an event to every tab. Failed tabs are dropped.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	targets := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mu.RUnlock()

	for id, c := range targets {
		if err := h.write(id, c, event, payload); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) write(connID string, c *client, event string, payload any) error {
	msg := map[string]any{"event": event, "data": payload}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		h.log.Warn("ws write failed", zap.String("conn_id", connID), zap.String("admin_email", c.email),
			zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}

// ResourceChanged broadcasts a successful mutation. It matches resource.ChangeFunc.
func (h *Hub) ResourceChanged(_ context.Context, resource, action string) {
	h.Broadcast(EventResourceChanged, ChangedPayload{Resource: resource, Action: action})
}

// ChangedPayload tells tabs to refetch a resource.
type ChangedPayload struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// KYCSearchPayload is the inbound search keystroke.
type KYCSearchPayload struct {
	Query  string           `json:"query"`
	Status entity.KYCStatus `json:"status"`
}

// KYCResultsPayload answers a debounced search.
type KYCResultsPayload struct {
	Query  string          `json:"query"`
	Status string          `json:"status"`
	Items  []entity.Driver `json:"items"`
	Total  int             `json:"total"`
	Error  string          `json:"error,omitempty"`
	Demo   bool            `json:"demo"`
}
