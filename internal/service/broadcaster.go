package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}

// MsgProgress is the message type of analysis progress events.
const MsgProgress = "analysis_progress"

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastToSession(string, string, interface{}) {}
func (noopBroadcaster) DisconnectSession(string)                       {}
