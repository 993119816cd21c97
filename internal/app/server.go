package app

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"px-platform/internal/audit"
	"px-platform/internal/cache"
	"px-platform/internal/config"
	"px-platform/internal/db"
	"px-platform/internal/entropy"
	"px-platform/internal/event"
	"px-platform/internal/gambling"
	"px-platform/internal/jobs"
	"px-platform/internal/ledger"
	"px-platform/internal/logger"
	"px-platform/internal/monitoring"
	"px-platform/internal/presale"
	"px-platform/internal/security"
	"px-platform/internal/token"
	"px-platform/internal/treasury"
	"px-platform/internal/ws"
)

// custodyAccount is the identity holding the presale supply and every
// custodied balance, the counterpart of the contract's own address.
const custodyAccount = "platform-custody"

type Server struct {
	app  *fiber.App
	port string
}

func NewServer() *Server {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()
	cache.Init(cfg.RedisAddr)
	database := db.Init(cfg.DBPath)

	journal := ledger.New(database)
	auditService := audit.New(database)
	bus := event.NewBus()
	hub := ws.NewHub()

	native := token.NewNative()
	token.Register(cfg.USDTToken, token.NewToken("USDT", 6))
	token.Register(cfg.BaseToken, token.NewToken("PXT", 18))

	saleConfig := presale.NewConfig(cfg.AdminAccount)
	saleConfig.SetBaseToken(cfg.AdminAccount, cfg.BaseToken)
	saleConfig.SetPaymentAsset(cfg.AdminAccount, cfg.USDTToken)

	gameConfig := gambling.NewConfig(cfg.AdminAccount)
	gameConfig.SetPaymentAsset(cfg.AdminAccount, cfg.USDTToken)

	source := entropy.NewProvable()

	// One lock for every engine touching the custody account: purchases,
	// settlements, and sweeps execute strictly one at a time.
	custodyMu := new(sync.Mutex)

	presaleService := presale.New(saleConfig, native, custodyAccount, custodyMu, database, journal, bus)
	gamblingService := gambling.New(gameConfig, native, source, custodyAccount, custodyMu, database, journal, bus)
	treasuryService := treasury.New(cfg.AdminAccount, custodyAccount, native, custodyMu, database, journal, bus)

	registerConsumers(bus, auditService, hub, saleConfig)

	manager := jobs.New()
	manager.Register(&jobs.SeedRotation{Source: source, Interval: time.Hour})
	go manager.Start(context.Background())

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		monitoring.HttpRequests.WithLabelValues(c.Method(), c.Path()).Inc()
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(), security.CallerContext())
	presale.RegisterRoutes(api, presaleService)
	gambling.RegisterRoutes(api, gamblingService)
	token.RegisterRoutes(api)

	admin := app.Group("/admin", security.AdminGuard(), security.CallerContext())
	presale.RegisterAdminRoutes(admin, saleConfig)
	gambling.RegisterAdminRoutes(admin, gameConfig)
	treasury.RegisterRoutes(admin, treasuryService)
	token.RegisterAdminRoutes(admin, native)

	return &Server{app: app, port: cfg.Port}
}

func (s *Server) Start() error {
	return s.app.Listen(":" + s.port)
}
