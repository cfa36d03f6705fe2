package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/client/authapi"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/client/dashapi"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/config"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/controller"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/handler"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pdf"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/implementation"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/memory"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/service"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/websocket"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/storage"

	pktNats "github.com/lwilly3/radioManager-SaaS-sub001/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	QuoteController     controller.IQuoteController
	ShowPlanController  controller.IShowPlanController
	ExportController    controller.IExportController
	DashboardController controller.IDashboardController

	// Live feed plumbing
	FeedHandler      *handler.FeedHandler
	QuoteFeedService service.IQuoteFeedService
	WebSocketHub     *websocket.Hub
}

// NewContainer wires the full dependency graph. db may be nil, in which case
// the in-memory store backs everything (dev and test setups).
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Document Store + Change Bus
	bus := docstore.NewChangeBus()
	var store docstore.Store
	if db != nil {
		gormStore, err := docstore.NewGormStore(db, bus)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize document store: %v", err)
		}
		store = gormStore
	} else {
		log.Println("[WARN] No database configured, using in-memory store")
		store = docstore.NewMemStore(bus)
	}

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	var natsSub *pktNats.Subscriber
	if natsPub != nil {
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		}
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisUp = false
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/feed.log")
	var hubRdb *redis.Client
	if redisUp {
		hubRdb = rdb
	}
	wsHub := websocket.NewHub(hubRdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	quoteRepo := implementation.NewQuoteRepository(store, sysLogger)
	showPlanRepo := implementation.NewShowPlanRepository(store, sysLogger)

	var savedSearchRepo contract.SavedSearchRepository
	if redisUp {
		savedSearchRepo = implementation.NewRedisSavedSearchRepository(rdb)
	} else {
		savedSearchRepo = memory.NewSavedSearchRepository()
	}

	// 4. External Clients
	backendTimeout := time.Duration(cfg.Backend.RequestTimeout) * time.Second
	authClient := authapi.NewClient(cfg.Backend.BaseURL, backendTimeout, sysLogger)
	dashClient := dashapi.NewClient(cfg.Backend.BaseURL, backendTimeout, sysLogger)

	var supabase *storage.SupabaseStorage
	if cfg.Storage.SupabaseURL != "" {
		supabase = storage.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket)
	}

	// 5. Services
	engine := pdf.NewEngine(cfg.Pdf.StationName, sysLogger)

	quoteService := service.NewQuoteService(quoteRepo, natsPub, sysLogger)
	feedService := service.NewQuoteFeedService(quoteService, savedSearchRepo, sysLogger)
	showPlanService := service.NewShowPlanService(showPlanRepo)
	exportService := service.NewExportService(quoteRepo, showPlanRepo, engine, natsPub, sysLogger)
	authService := service.NewAuthService(authClient, sysLogger)
	dashboardService := service.NewDashboardService(dashClient, sysLogger)
	uploadService := service.NewUploadService(supabase, sysLogger)

	if natsSub != nil {
		consumer := service.NewConsumerService(natsSub, wsHub, sysLogger)
		if err := consumer.Consume(); err != nil {
			log.Printf("[WARN] Failed to start event consumer: %v", err)
		}
	}

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		QuoteController:     controller.NewQuoteController(quoteService, feedService, uploadService),
		ShowPlanController:  controller.NewShowPlanController(showPlanService),
		ExportController:    controller.NewExportController(exportService),
		DashboardController: controller.NewDashboardController(dashboardService),

		FeedHandler:      handler.NewFeedHandler(feedService, wsHub, wsLogger),
		QuoteFeedService: feedService,
		WebSocketHub:     wsHub,
	}
}
