package bootstrap

import (
	"context"
	"log"
	"time"

	"brigade-taxonomy-be/internal/config"
	"brigade-taxonomy-be/internal/controller"
	"brigade-taxonomy-be/internal/handler"
	"brigade-taxonomy-be/internal/pkg/logger"
	"brigade-taxonomy-be/internal/repository/memory"
	"brigade-taxonomy-be/internal/repository/unitofwork"
	"brigade-taxonomy-be/internal/service"
	"brigade-taxonomy-be/internal/websocket"

	pktNats "brigade-taxonomy-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController   controller.ISessionController
	TaxonomyController  controller.ITaxonomyController
	SelectionController controller.ISelectionController
	MessageController   controller.IMessageController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	ActivityService service.IActivityService

	// WebSockets & Activity Feed
	ActivityHandler *handler.ActivityHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/activity.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. In-Memory Selection Storage
	selectionRepo := memory.NewSelectionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.SelectionTopic, pubSub)
	consumerService := service.NewConsumerService(
		cfg.App.SelectionTopic,
		pubSub,
		selectionRepo,
		wsHub,
		sysLogger,
	)

	sessionService := service.NewSessionService(
		selectionRepo,
		natsPub,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		sysLogger,
	)
	taxonomyService := service.NewTaxonomyService(uowFactory, sysLogger)
	selectionService := service.NewSelectionService(selectionRepo, publisherService, natsPub, sysLogger)
	messageService := service.NewMessageService(uowFactory, natsPub, sysLogger)

	activityService := service.NewActivityService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		if err := activityService.StartWorker(); err != nil {
			log.Printf("[WARN] Failed to start activity worker: %v", err)
		}
	}

	activityHandler := handler.NewActivityHandler(activityService, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		SessionController:   controller.NewSessionController(sessionService),
		TaxonomyController:  controller.NewTaxonomyController(taxonomyService),
		SelectionController: controller.NewSelectionController(selectionService),
		MessageController:   controller.NewMessageController(messageService),

		ConsumerService: consumerService,
		ActivityService: activityService,

		ActivityHandler: activityHandler,
		WebSocketHub:    wsHub,
	}
}
