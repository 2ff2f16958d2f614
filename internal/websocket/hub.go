package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"octobot-be/internal/pkg/logger"
	"octobot-be/pkg/events"
)

// Hub fans dashboard events out to connected admin clients. Every
// event is a broadcast; admins all watch the same dashboard.
type Hub struct {
	// AdminID -> connections (multi-tab)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, nil when running a
	// single instance.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.AdminID] = append(h.clients[client.AdminID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"admin_id": client.AdminID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.AdminID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.AdminID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.AdminID]) == 0 {
					delete(h.clients, client.AdminID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"admin_id": client.AdminID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes a dashboard event to every connected admin, then
// relays it through Redis so other instances do the same.
func (h *Hub) Broadcast(event events.Event) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"message": json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "dashboard_events", jsonPayload)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	var stalled []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stalled = append(stalled, client)
			}
		}
	}
	h.mu.RUnlock()

	// Unregister outside the read lock; Run needs the write lock to
	// process these.
	for _, client := range stalled {
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"admin_id": client.AdminID})
		go func(c *Client) { h.unregister <- c }(client)
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "dashboard_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		h.broadcastLocal(payload.Message)
	}
}
