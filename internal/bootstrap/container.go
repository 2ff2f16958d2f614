package bootstrap

import (
	"context"
	"log"

	"octobot-be/internal/config"
	"octobot-be/internal/controller"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/pkg/mailer"
	"octobot-be/internal/pkg/serverutils"
	"octobot-be/internal/repository/unitofwork"
	"octobot-be/internal/service"
	"octobot-be/internal/websocket"
	"octobot-be/pkg/admin/dashboard"
	"octobot-be/pkg/linkpreview"
	"octobot-be/pkg/relay"

	pktNats "octobot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// devAdminId is the fixed identity injected when DEV_AUTH_BYPASS is on.
var devAdminId = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	AdminController   controller.IAdminController
	BotController     controller.IBotController
	TesterController  controller.ITesterController
	TeamController    controller.ITeamController
	BannerController  controller.IBannerController
	SessionController controller.ISessionController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	DashboardEventService service.IDashboardEventService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS mirror is optional; every consumer of natsPub tolerates nil.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsEnabled {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis fan-out across instances; nil keeps the hub single-instance.
	var rdb *redis.Client
	if cfg.App.RedisEnabled {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	relayClient := relay.NewClient()
	previewFetcher := linkpreview.NewFetcher()
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	publisherService := service.NewPublisherService(service.DashboardEventsTopic, pubSub)
	dashboardEventService := service.NewDashboardEventService(
		pubSub,
		service.DashboardEventsTopic,
		wsHub,
		natsPub,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory)
	adminService := service.NewAdminService(uowFactory)
	botService := service.NewBotService(uowFactory, dashboardAggregator)
	testerService := service.NewTesterService(uowFactory, emailService, sysLogger)
	teamService := service.NewTeamService(uowFactory)
	bannerService := service.NewBannerService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, publisherService, sysLogger)
	messageService := service.NewMessageService(uowFactory, relayClient, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	analyticsService := service.NewAnalyticsService(uowFactory, dashboardAggregator)

	// 3.5 Auth middleware. The bypass variant is for local frontend work
	// against an empty database and must never reach production.
	var adminMiddleware fiber.Handler = serverutils.AdminMiddleware
	if cfg.App.DevAuthBypass && cfg.App.Environment != "production" {
		log.Printf("[WARN] DEV_AUTH_BYPASS is on: admin routes are unauthenticated")
		adminMiddleware = serverutils.DevAdminMiddleware(devAdminId)
	}

	// 4. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService, adminMiddleware),
		AdminController:  controller.NewAdminController(adminService, wsHub, cfg.Uploads.Dir, cfg.App.BaseURL, adminMiddleware),
		BotController:    controller.NewBotController(botService, adminMiddleware),
		TesterController: controller.NewTesterController(testerService, adminMiddleware),
		TeamController:   controller.NewTeamController(teamService, adminMiddleware),
		BannerController: controller.NewBannerController(bannerService, adminMiddleware),
		SessionController: controller.NewSessionController(
			sessionService,
			noteService,
			analyticsService,
			adminMiddleware,
		),
		ChatController: controller.NewChatController(
			sessionService,
			messageService,
			bannerService,
			previewFetcher,
		),

		DashboardEventService: dashboardEventService,
		WebSocketHub:          wsHub,
	}
}
