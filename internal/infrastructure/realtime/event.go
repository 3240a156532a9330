package realtime

import (
	"encoding/json"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Event types pushed to subscribers
const (
	EventNotificationCreated = "notification.created"
	EventNotificationRead    = "notification.read"
)

// Event is the message written to websocket subscribers
type Event struct {
	Type         string                 `json:"type"`
	Timestamp    time.Time              `json:"timestamp"`
	Notification *entities.Notification `json:"notification"`
}

func serializeEvent(e *Event) ([]byte, error) {
	return json.Marshal(e)
}
