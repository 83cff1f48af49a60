package ws

import (
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"sync"

	"github.com/goccy/go-json"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAnalysisProgress MessageType = "analysis_progress"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans analysis progress out to the connections watching a session.
// A session may have several connections, e.g. one per open tab.
type Hub struct {
	sessions map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage

	done      chan struct{}
	closeOnce sync.Once

	log *logger.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast. Close ends the session's
// connections instead; it shares the queue so earlier messages go out first.
type BroadcastMessage struct {
	SessionID string
	Message   *Message
	Close     bool
}

// NewHub creates a new WebSocket hub
func NewHub(log *logger.Logger) *Hub {
	h := &Hub{
		sessions:   make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		log:        log.With("component", "ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.sessions {
				for conn := range conns {
					h.remove(conn)
				}
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.sessions[conn.SessionID] == nil {
				h.sessions[conn.SessionID] = make(map[*Connection]struct{})
			}
			h.sessions[conn.SessionID][conn] = struct{}{}
			h.mu.Unlock()
			metrics.WSConnections.Inc()
			h.log.Debug("connection registered", "session", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			h.remove(conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			if msg.Close {
				h.mu.Lock()
				for conn := range h.sessions[msg.SessionID] {
					h.remove(conn)
				}
				h.mu.Unlock()
				continue
			}
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.Error("failed to encode message", "type", msg.Message.Type, "error", err)
				continue
			}
			h.mu.RLock()
			for conn := range h.sessions[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// remove closes conn if it is still registered. Callers hold h.mu.
func (h *Hub) remove(conn *Connection) {
	conns, ok := h.sessions[conn.SessionID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; !ok {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.sessions, conn.SessionID)
	}
	close(conn.Send)
	metrics.WSConnections.Dec()
	h.log.Debug("connection closed", "session", conn.SessionID)
}

// Close stops the hub and closes every connection. Connections registered
// afterwards are closed straight away and broadcasts are dropped.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) enqueue(msg *BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Connections returns how many connections watch a session
func (h *Hub) Connections(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

// BroadcastToSession sends a message to every connection of a session (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to encode payload", "type", msgType, "error", err)
		return
	}
	h.enqueue(&BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	})
}

// DisconnectSession closes every connection of a session once queued
// messages have been handed to them (implements service.Broadcaster)
func (h *Hub) DisconnectSession(sessionID string) {
	h.enqueue(&BroadcastMessage{SessionID: sessionID, Close: true})
}
