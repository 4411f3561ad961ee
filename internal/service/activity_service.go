package service

import (
	"context"
	"encoding/json"
	"fmt"

	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/model"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/events"
	pktNats "brigade-taxonomy-be/pkg/nats"

	"github.com/google/uuid"
)

type IActivityService interface {
	StartWorker() error
	GetBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) (*dto.ListActivitiesResponse, error)
}

// activityService turns bus events into a per-session activity feed: each
// event is persisted and, when the session has live clients, pushed out.
type activityService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	hub        PushDelivery
	logger     logger.ILogger
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	hub PushDelivery,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *activityService) StartWorker() error {
	if s.subscriber == nil {
		s.logger.Warn("ActivityService", "No event subscriber configured, activity feed disabled", nil)
		return nil
	}
	return s.subscriber.Subscribe("events.>", "activity-worker", s.handleEvent)
}

func (s *activityService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	rawSession, _ := payload["session_id"].(string)
	sessionID, err := uuid.Parse(rawSession)
	if err != nil {
		// Events without a session owner are not part of any feed.
		s.logger.Warn("ActivityService", "Dropping event without session id", map[string]interface{}{
			"type": event.EventType(),
		})
		return nil
	}

	title, body := describeEvent(event.EventType(), payload)
	metadata, _ := json.Marshal(payload)

	activity := &model.Activity{
		Id:        uuid.New(),
		SessionId: sessionID,
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   body,
		Metadata:  metadata,
		CreatedAt: event.Timestamp(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return fmt.Errorf("failed to persist activity: %w", err)
	}

	s.hub.Send(sessionID, "activity", dto.ActivityResponse{
		Id:        activity.Id,
		TypeCode:  activity.TypeCode,
		Title:     activity.Title,
		Message:   activity.Message,
		CreatedAt: activity.CreatedAt,
	})
	return nil
}

func (s *activityService) GetBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) (*dto.ListActivitiesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, total, err := uow.ActivityRepository().GetBySessionID(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}

	res := &dto.ListActivitiesResponse{
		Activities: make([]dto.ActivityResponse, 0, len(activities)),
		Total:      total,
	}
	for _, a := range activities {
		res.Activities = append(res.Activities, dto.ActivityResponse{
			Id:        a.Id,
			TypeCode:  a.TypeCode,
			Title:     a.Title,
			Message:   a.Message,
			CreatedAt: a.CreatedAt,
		})
	}
	return res, nil
}

func describeEvent(eventType string, payload map[string]interface{}) (string, string) {
	item, _ := payload["item"].(string)
	taxonomy, _ := payload["taxonomy"].(string)

	switch eventType {
	case events.TypeItemSelected:
		return "Item selected", fmt.Sprintf("'%s' added to %s", item, taxonomy)
	case events.TypeItemUnselected:
		return "Item removed", fmt.Sprintf("'%s' removed from %s", item, taxonomy)
	case events.TypeMessagePosted:
		return "Message posted", "A new message was posted"
	case events.TypeSessionStarted:
		return "Session started", "A new session was started"
	default:
		return eventType, ""
	}
}
