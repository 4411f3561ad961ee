package service

import (
	"context"
	"time"

	"brigade-taxonomy-be/internal/dto"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/repository/memory"
	"brigade-taxonomy-be/pkg/events"
	pktNats "brigade-taxonomy-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	End(ctx context.Context, sessionID uuid.UUID)
}

type sessionService struct {
	selectionRepo *memory.SelectionRepository
	natsPub       *pktNats.Publisher
	jwtSecret     []byte
	tokenTTL      time.Duration
	logger        logger.ILogger
}

func NewSessionService(
	selectionRepo *memory.SelectionRepository,
	natsPub *pktNats.Publisher,
	jwtSecret string,
	tokenTTL time.Duration,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		selectionRepo: selectionRepo,
		natsPub:       natsPub,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
		logger:        log,
	}
}

// Create mints an anonymous session: a fresh id, an initialized selection
// record per taxonomy, and a bearer token scoped to that id.
func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sessionID := uuid.New()
	s.selectionRepo.GetOrCreate(sessionID)

	claims := jwt.MapClaims{
		"session_id": sessionID.String(),
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		event := events.BaseEvent{
			Type: events.TypeSessionStarted,
			Data: map[string]interface{}{
				"session_id": sessionID.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("SessionService", "Failed to publish session event", map[string]interface{}{
				"session_id": sessionID.String(),
				"error":      err.Error(),
			})
		}
	}

	s.logger.Info("SessionService", "Session created", map[string]interface{}{
		"session_id": sessionID.String(),
	})

	return &dto.CreateSessionResponse{
		SessionId: sessionID,
		Token:     signed,
	}, nil
}

// End drops the session's in-memory selection state. The token stays valid
// until expiry; a later request simply starts from an empty record.
func (s *sessionService) End(ctx context.Context, sessionID uuid.UUID) {
	s.selectionRepo.Delete(sessionID)
	s.logger.Info("SessionService", "Session ended", map[string]interface{}{
		"session_id": sessionID.String(),
	})
}
