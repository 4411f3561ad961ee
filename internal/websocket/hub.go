package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"brigade-taxonomy-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// clusterEnvelope wraps a frame published on the shared Redis channel. The
// origin field lets an instance skip frames it already delivered locally.
type clusterEnvelope struct {
	Origin          string          `json:"origin"`
	TargetSessionID string          `json:"target_session_id"`
	Message         json.RawMessage `json:"message"`
}

// Hub routes server-pushed frames to the websocket clients of a session.
// A session may have several open tabs, so it maps to a list of clients.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// instanceID tags cluster envelopes published by this hub.
	instanceID string

	// Redis connection for cross-instance delivery. Nil in single-node setups.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		instanceID: uuid.NewString(),
		rdb:        rdb,
		logger:     log,
	}
}

// Run owns the client registry. It is the only goroutine that closes a
// client's Send channel, so a client unregistered twice is closed once.
func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session fully disconnected", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a typed frame to every client of one session, locally and
// via Redis for clients held by other instances.
func (h *Hub) Send(sessionID uuid.UUID, messageType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": payload,
	})

	h.deliverLocal(sessionID, data)
	h.publishCluster(sessionID.String(), data)
}

// Broadcast delivers a typed frame to every connected client.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": payload,
	})

	h.deliverAll(data)
	h.publishCluster("*", data)
}

// deliverLocal pushes a frame to one session's clients. Writes happen under
// the read lock so Run cannot close a channel mid-send; slow clients are
// handed to Run for removal after the lock is released.
func (h *Hub) deliverLocal(sessionID uuid.UUID, data []byte) {
	var slow []*Client

	h.mu.RLock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		h.unregister <- client
	}
}

func (h *Hub) deliverAll(data []byte) {
	var slow []*Client

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				slow = append(slow, client)
			}
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		h.unregister <- client
	}
}

func (h *Hub) publishCluster(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	envelope, _ := json.Marshal(clusterEnvelope{
		Origin:          h.instanceID,
		TargetSessionID: target,
		Message:         data,
	})
	h.rdb.Publish(context.Background(), "cluster_events", envelope)
}

// subscribeToRedis relays frames published by other instances. Every
// instance subscribes to the shared channel and forwards only frames whose
// target session is connected locally.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		h.handleClusterEvent([]byte(msg.Payload))
	}
}

func (h *Hub) handleClusterEvent(payload []byte) {
	var envelope clusterEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		log.Printf("Redis msg parse error: %v", err)
		return
	}

	// This instance already delivered its own frames locally.
	if envelope.Origin == h.instanceID {
		return
	}

	if envelope.TargetSessionID == "*" {
		h.deliverAll(envelope.Message)
		return
	}

	sid, err := uuid.Parse(envelope.TargetSessionID)
	if err != nil {
		return
	}
	h.deliverLocal(sid, envelope.Message)
}
