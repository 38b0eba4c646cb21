package bootstrap

import (
	"context"
	"fmt"
	"time"

	"deal-insights-be/internal/config"
	"deal-insights-be/internal/controller"
	"deal-insights-be/internal/handler"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/memory"
	"deal-insights-be/internal/service"
	"deal-insights-be/internal/websocket"
	"deal-insights-be/pkg/events"
	pktNats "deal-insights-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ProjectController controller.IProjectController
	ChatController    controller.IChatController
	SessionController controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	SessionStreamHandler *handler.SessionStreamHandler
	WebSocketHub         *websocket.Hub

	SessionRepository *memory.SessionRepository
	Logger            logger.ILogger

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
	rdb     *redis.Client
	loggers []logger.ILogger
}

// NewContainer wires everything. NATS and Redis are optional: when their URL
// is empty or unreachable the container runs without them.
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	seed := memory.SeedProjects()
	projectRepo, err := memory.NewProjectRepository(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load project records: %w", err)
	}
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)
	viewCache := memory.NewViewCache(cfg.Session.ViewCacheTTL)

	// 2. Event Bus
	pubSub := service.NewEventBus(watermill.NewStdLogger(false, false))

	// 3. Infrastructure
	var externalBus events.Publisher
	var natsPub *pktNats.Publisher
	if cfg.Events.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
			natsPub = nil
		} else {
			externalBus = natsPub
		}
	}

	var rdb *redis.Client
	if cfg.Events.RedisURL != "" {
		rdb = newRedisClient(cfg.Events.RedisURL, sysLogger)
	}

	wsHub := websocket.NewHub(rdb, sysLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.Topic, wsHub, externalBus, sysLogger)

	projectService := service.NewProjectService(projectRepo, viewCache, sysLogger)
	chatService := service.NewChatService(projectRepo, sysLogger)
	sessionService := service.NewSessionService(
		sessionRepo,
		projectService,
		publisherService,
		cfg.Session.ReplyLatency,
		sysLogger,
		eventLogger,
	)

	sysLogger.Info("Bootstrap", "Container ready", map[string]interface{}{
		"projects":    len(seed),
		"nats":        natsPub != nil,
		"redis":       rdb != nil,
		"reply_delay": cfg.Session.ReplyLatency.String(),
	})

	// 5. Controllers
	return &Container{
		ProjectController:    controller.NewProjectController(projectService),
		ChatController:       controller.NewChatController(chatService),
		SessionController:    controller.NewSessionController(sessionService),
		SessionStreamHandler: handler.NewSessionStreamHandler(sessionService, wsHub, sysLogger),
		WebSocketHub:         wsHub,
		ConsumerService:      consumerService,
		SessionRepository:    sessionRepo,
		Logger:               sysLogger,

		pubSub:  pubSub,
		natsPub: natsPub,
		rdb:     rdb,
		loggers: []logger.ILogger{sysLogger, eventLogger},
	}, nil
}

func newRedisClient(url string, log logger.ILogger) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Bootstrap", "Failed to connect to Redis, running single-instance", map[string]interface{}{"error": err.Error()})
		rdb.Close()
		return nil
	}
	return rdb
}

// Close disposes live sessions and releases every connection. Call it after
// the HTTP server has stopped.
func (c *Container) Close() {
	c.SessionRepository.Flush()

	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("Bootstrap", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		c.rdb.Close()
	}
	for _, l := range c.loggers {
		_ = l.Sync()
	}
}
