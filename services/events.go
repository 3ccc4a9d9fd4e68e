package services

import (
	"github.com/xpsc-club/xpsc-server/realtime"
)

// EventPublisher receives change notifications after successful writes.
type EventPublisher interface {
	BroadcastToRoom(roomID string, event realtime.Event)
}

type nopPublisher struct{}

// NewNopPublisher discards every event.
func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) BroadcastToRoom(string, realtime.Event) {}

// int64Field reads an integral number from a loosely typed document.
func int64Field(doc map[string]interface{}, key string) (int64, bool) {
	switch v := doc[key].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}
