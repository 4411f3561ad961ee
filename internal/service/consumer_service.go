package service

import (
	"context"
	"encoding/json"

	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// PushDelivery delivers server-initiated frames to connected clients.
// The websocket hub implements it.
type PushDelivery interface {
	Send(sessionID uuid.UUID, messageType string, data interface{})
	Broadcast(messageType string, data interface{})
}

type IConsumerService interface {
	Listen(ctx context.Context) error
}

// consumerService drains the in-process selection-change topic and pushes a
// freshly rendered view to the owning session's websocket clients.
type consumerService struct {
	topicName     string
	pubSub        *gochannel.GoChannel
	selectionRepo *memory.SelectionRepository
	hub           PushDelivery
	logger        logger.ILogger
}

func NewConsumerService(
	topicName string,
	pubSub *gochannel.GoChannel,
	selectionRepo *memory.SelectionRepository,
	hub PushDelivery,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		topicName:     topicName,
		pubSub:        pubSub,
		selectionRepo: selectionRepo,
		hub:           hub,
		logger:        log,
	}
}

func (s *consumerService) Listen(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.process(msg)
			msg.Ack()
		}
	}()

	s.logger.Info("ConsumerService", "Listening for selection changes", map[string]interface{}{
		"topic": s.topicName,
	})
	return nil
}

func (s *consumerService) process(msg *message.Message) {
	var change dto.SelectionChangedMessage
	if err := json.Unmarshal(msg.Payload, &change); err != nil {
		s.logger.Error("ConsumerService", "Failed to unmarshal change message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	state, found := s.selectionRepo.Get(change.SessionId)
	if !found {
		// Session expired between publish and delivery; nothing to render.
		return
	}

	view, err := BuildSelectionView(state, change.Taxonomy)
	if err != nil {
		s.logger.Warn("ConsumerService", "Failed to build selection view", map[string]interface{}{
			"taxonomy": change.Taxonomy,
			"error":    err.Error(),
		})
		return
	}

	s.hub.Send(change.SessionId, "selection_view", view)
}
