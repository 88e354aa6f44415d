package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models"
)

// Hub maintains the set of connected faculty dashboards and pushes
// notification events to them. It is push-only: clients never publish.
type Hub struct {
	// Registered clients organized by faculty profile ID
	clients map[int64]map[*Client]bool

	// Outbound events to deliver
	events chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// Event is a notification push frame sent to a faculty dashboard
type Event struct {
	Type         string               `json:"type"` // currently always "notification"
	FacultyID    int64                `json:"facultyId"`
	Notification *models.Notification `json:"notification"`
	Timestamp    time.Time            `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		events:     make(chan *Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[int64]map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and event delivery
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	facultyID := client.facultyID
	if _, ok := h.clients[facultyID]; !ok {
		h.clients[facultyID] = make(map[*Client]bool)
	}
	h.clients[facultyID][client] = true

	h.logger.Info().
		Int64("facultyID", facultyID).
		Int64("userID", client.userID).
		Str("addr", client.addr).
		Msg("Notification stream client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	facultyID := client.facultyID
	if _, ok := h.clients[facultyID]; ok {
		if _, ok := h.clients[facultyID][client]; ok {
			delete(h.clients[facultyID], client)
			close(client.send)

			if len(h.clients[facultyID]) == 0 {
				delete(h.clients, facultyID)
			}

			h.logger.Info().
				Int64("facultyID", facultyID).
				Int64("userID", client.userID).
				Msg("Notification stream client unregistered")
		}
	}
}

// deliver sends an event to every connected dashboard of its faculty
func (h *Hub) deliver(event *Event) {
	h.mu.RLock()
	clients, ok := h.clients[event.FacultyID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.mu.RUnlock()
		h.logger.Error().Err(err).Int64("facultyID", event.FacultyID).Msg("Failed to marshal notification event")
		return
	}

	var slow []*Client
	for client := range clients {
		select {
		case client.send <- data:
		default:
			// Send buffer full; drop the client rather than block delivery
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// Slow clients are removed inline. deliver runs on the same goroutine
	// that drains the unregister channel, so sending to it here would
	// block forever.
	for _, client := range slow {
		h.unregisterClient(client)
	}
}

// PushNotification queues a notification event for delivery. Non-blocking:
// if the faculty has no connected dashboard or the hub is saturated the
// event is dropped, the persisted notification is still readable through
// the REST feed.
func (h *Hub) PushNotification(n *models.Notification) {
	if h.ClientCount(n.FacultyID) == 0 {
		return
	}

	event := &Event{
		Type:         "notification",
		FacultyID:    n.FacultyID,
		Notification: n,
		Timestamp:    time.Now(),
	}

	select {
	case h.events <- event:
	default:
		h.logger.Warn().Int64("facultyID", n.FacultyID).Msg("Notification push queue full, event dropped")
	}
}

// ClientCount returns the number of connected clients for a faculty
func (h *Hub) ClientCount(facultyID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[facultyID]; ok {
		return len(clients)
	}
	return 0
}
