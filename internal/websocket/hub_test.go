package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	h := NewHub(nil, quietLogger{})
	go h.Run()
	return h
}

func (h *Hub) clientCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func registerAndWait(t *testing.T, h *Hub, client *Client) {
	t.Helper()
	h.register <- client
	require.Eventually(t, func() bool {
		return h.clientCount(client.SessionID) == 1
	}, time.Second, 5*time.Millisecond)
}

// A client whose buffer is full gets dropped, not pushed to. Repeated sends
// to the same stalled client must not close its channel twice.
func TestSendDropsStalledClient(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()
	client := &Client{
		Hub:       h,
		SessionID: sessionID,
		Send:      make(chan []byte), // no reader, every send overflows
	}
	registerAndWait(t, h, client)

	h.Send(sessionID, "activity", map[string]string{"title": "first"})
	h.Send(sessionID, "activity", map[string]string{"title": "second"})

	require.Eventually(t, func() bool {
		return h.clientCount(sessionID) == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	h := newTestHub()

	healthy := &Client{Hub: h, SessionID: uuid.New(), Send: make(chan []byte, 4)}
	stalled := &Client{Hub: h, SessionID: uuid.New(), Send: make(chan []byte)}
	registerAndWait(t, h, healthy)
	registerAndWait(t, h, stalled)

	h.Broadcast("activity", map[string]string{"title": "hello"})
	h.Broadcast("activity", map[string]string{"title": "again"})

	require.Eventually(t, func() bool {
		return h.clientCount(stalled.SessionID) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, h.clientCount(healthy.SessionID))
	assert.Equal(t, 2, len(healthy.Send))
}

func TestUnregisterTwiceClosesOnce(t *testing.T) {
	h := newTestHub()
	client := &Client{Hub: h, SessionID: uuid.New(), Send: make(chan []byte, 1)}
	registerAndWait(t, h, client)

	h.unregister <- client
	h.unregister <- client

	require.Eventually(t, func() bool {
		return h.clientCount(client.SessionID) == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

// Frames this instance published itself come back on the cluster channel and
// must be skipped, otherwise every local client sees them twice.
func TestClusterEventSkipsOwnOrigin(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()
	client := &Client{Hub: h, SessionID: sessionID, Send: make(chan []byte, 4)}
	registerAndWait(t, h, client)

	frame := json.RawMessage(`{"type":"activity","data":{"title":"hello"}}`)

	own, err := json.Marshal(clusterEnvelope{
		Origin:          h.instanceID,
		TargetSessionID: sessionID.String(),
		Message:         frame,
	})
	require.NoError(t, err)
	h.handleClusterEvent(own)
	assert.Equal(t, 0, len(client.Send))

	remote, err := json.Marshal(clusterEnvelope{
		Origin:          uuid.NewString(),
		TargetSessionID: sessionID.String(),
		Message:         frame,
	})
	require.NoError(t, err)
	h.handleClusterEvent(remote)
	assert.Equal(t, 1, len(client.Send))
}

func TestClusterEventBroadcastTarget(t *testing.T) {
	h := newTestHub()
	first := &Client{Hub: h, SessionID: uuid.New(), Send: make(chan []byte, 4)}
	second := &Client{Hub: h, SessionID: uuid.New(), Send: make(chan []byte, 4)}
	registerAndWait(t, h, first)
	registerAndWait(t, h, second)

	remote, err := json.Marshal(clusterEnvelope{
		Origin:          uuid.NewString(),
		TargetSessionID: "*",
		Message:         json.RawMessage(`{"type":"activity","data":{}}`),
	})
	require.NoError(t, err)
	h.handleClusterEvent(remote)

	assert.Equal(t, 1, len(first.Send))
	assert.Equal(t, 1, len(second.Send))
}
