// Package realtime pushes notification events to websocket subscribers.
package realtime

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Hub fans events out to the subscribers of a user. Register, unregister and
// broadcast are serialized through Run.
type Hub struct {
	logger      *zap.Logger
	clients     map[int]map[*Client]struct{}
	clientsLock sync.RWMutex
	register    chan *Client
	unregister  chan *Client
	broadcast   chan *userEvent
	stop        chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

type userEvent struct {
	userID int
	event  *Event
}

// NewHub creates a hub. Call Run in its own goroutine.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[int]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *userEvent, 256),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		now:        time.Now,
	}
}

// Run processes hub traffic until Shutdown is called
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case ue := <-h.broadcast:
			h.deliver(ue)
		case <-h.stop:
			h.clientsLock.Lock()
			for _, set := range h.clients {
				for c := range set {
					c.stopClient()
				}
			}
			h.clients = make(map[int]map[*Client]struct{})
			h.clientsLock.Unlock()
			return
		}
	}
}

// Shutdown stops Run and disconnects every subscriber
func (h *Hub) Shutdown() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// PublishNotification pushes a notification event to the notification owner
func (h *Hub) PublishNotification(eventType string, n *entities.Notification) {
	ue := &userEvent{
		userID: n.UserID,
		event: &Event{
			Type:         eventType,
			Timestamp:    h.now().UTC(),
			Notification: n,
		},
	}

	select {
	case h.broadcast <- ue:
	case <-h.stop:
	default:
		h.logger.Warn("Broadcast channel full, dropping event",
			zap.String("type", eventType),
			zap.Int("notification_id", n.ID),
		)
	}
}

// Subscribers returns the number of connected subscribers for a user
func (h *Hub) Subscribers(userID int) int {
	h.clientsLock.RLock()
	defer h.clientsLock.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) deliver(ue *userEvent) {
	h.clientsLock.RLock()
	var slow []*Client
	for c := range h.clients[ue.userID] {
		if !c.queueEvent(ue.event) {
			slow = append(slow, c)
		}
	}
	h.clientsLock.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow websocket subscriber", zap.Int("user_id", ue.userID))
		h.removeClient(c)
	}
}

func (h *Hub) addClient(c *Client) {
	h.clientsLock.Lock()
	defer h.clientsLock.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.logger.Debug("Websocket subscriber added", zap.Int("user_id", c.userID), zap.Int("subscribers", len(set)))
}

func (h *Hub) removeClient(c *Client) {
	h.clientsLock.Lock()
	defer h.clientsLock.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	c.stopClient()
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	h.logger.Debug("Websocket subscriber removed", zap.Int("user_id", c.userID))
}
