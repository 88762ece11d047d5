package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	// gorilla allows one writer at a time; broadcasts and keepalive pings
	// share this lock
	writeMu sync.Mutex
}

// Send writes one frame to the client, serializing with any other writer.
func (c *WSClient) Send(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans activity events out to a user's open dashboard
// connections so the today view refreshes without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Send(websocket.TextMessage, msg)
	}
}

var rtHub *RealtimeHub

func InitRealtime(h *RealtimeHub) {
	rtHub = h
}

// EmitActivity pushes a record-created event to the owning user. Safe to call
// before the hub is wired up (tests, one-off tools): it just does nothing.
func EmitActivity(userID uint, kind string, data any) {
	if rtHub == nil {
		return
	}
	rtHub.Broadcast(userID, map[string]any{
		"kind": kind,
		"data": data,
	})
}
