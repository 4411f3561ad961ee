package service

import (
	"context"
	"time"

	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/entity"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/pkg/serverutils"
	"brigade-taxonomy-be/internal/repository/specification"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/pkg/events"
	pktNats "brigade-taxonomy-be/pkg/nats"

	"github.com/google/uuid"
)

type IMessageService interface {
	Create(ctx context.Context, sessionID uuid.UUID, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error)
	Get(ctx context.Context, sessionID, messageID uuid.UUID) (*dto.GetMessageResponse, error)
	List(ctx context.Context, sessionID uuid.UUID, limit, offset int) (*dto.ListMessagesResponse, error)
	Delete(ctx context.Context, sessionID, messageID uuid.UUID) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktNats.Publisher
	logger     logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, natsPub *pktNats.Publisher, log logger.ILogger) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		natsPub:    natsPub,
		logger:     log,
	}
}

func (s *messageService) Create(ctx context.Context, sessionID uuid.UUID, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	msg := &entity.Message{
		Id:        uuid.New(),
		SessionId: sessionID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		event := events.BaseEvent{
			Type: events.TypeMessagePosted,
			Data: map[string]interface{}{
				"session_id": sessionID.String(),
				"message_id": msg.Id.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("MessageService", "Failed to publish message event", map[string]interface{}{
				"message_id": msg.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return &dto.CreateMessageResponse{Id: msg.Id}, nil
}

func (s *messageService) Get(ctx context.Context, sessionID, messageID uuid.UUID) (*dto.GetMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: messageID},
		specification.BySessionID{SessionID: sessionID},
	)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, serverutils.NewNotFoundError("message not found")
	}

	return &dto.GetMessageResponse{
		Id:        msg.Id,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (s *messageService) List(ctx context.Context, sessionID uuid.UUID, limit, offset int) (*dto.ListMessagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MessageRepository()

	total, err := repo.Count(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}

	msgs, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ListMessagesResponse{
		Messages: make([]dto.GetMessageResponse, 0, len(msgs)),
		Total:    total,
	}
	for _, msg := range msgs {
		res.Messages = append(res.Messages, dto.GetMessageResponse{
			Id:        msg.Id,
			Body:      msg.Body,
			CreatedAt: msg.CreatedAt,
		})
	}
	return res, nil
}

func (s *messageService) Delete(ctx context.Context, sessionID, messageID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.MessageRepository()
	msg, err := repo.FindOne(ctx,
		specification.ByID{ID: messageID},
		specification.BySessionID{SessionID: sessionID},
	)
	if err != nil {
		return err
	}
	if msg == nil {
		return serverutils.NewNotFoundError("message not found")
	}

	if err := repo.Delete(ctx, messageID); err != nil {
		return err
	}
	return uow.Commit()
}
