package main // Entry point package

import (
	"context" // Context for bounding the bootstrap DB work
	"log"     // Logging library
	"time"    // Timeout durations

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/skyops/airline-backoffice/internal/cache"      // Flight search result cache
	"github.com/skyops/airline-backoffice/internal/config"     // Internal config loader
	"github.com/skyops/airline-backoffice/internal/database"   // SQLite open, schema and seed
	"github.com/skyops/airline-backoffice/internal/handler"    // HTTP handlers
	"github.com/skyops/airline-backoffice/internal/middleware" // Rate limiting middleware
	"github.com/skyops/airline-backoffice/internal/queue"      // Booking event consumer
	"github.com/skyops/airline-backoffice/internal/repository" // Data access layer
	"github.com/skyops/airline-backoffice/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; existing env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBPath) // Open the SQLite store
	if err != nil {
		log.Fatalf("open database: %v", err) // Abort when the store is unreachable
	}
	defer db.Close()

	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second) // Bound schema and seed work
	defer cancel()
	if err := database.Init(bootCtx, db); err != nil { // Create tables when absent
		log.Fatalf("init schema: %v", err)
	}
	if err := database.Seed(bootCtx, db, cfg.BcryptCost); err != nil { // Seed default admin, promotion and sample flights
		log.Fatalf("seed data: %v", err)
	}

	rdb := config.NewRedisClient() // Optional Redis client; nil disables limits and caching

	// Repositories share the single pooled connection.
	adminRepo := repository.NewAdminRepo(db)               // admins table
	userRepo := repository.NewUserRepo(db)                 // users table
	sessionRepo := repository.NewSessionRepo(db)           // server-held sessions
	flightRepo := repository.NewFlightRepo(db)             // flights and the archive move
	passengerRepo := repository.NewPassengerRepo(db)       // booking records
	transactionRepo := repository.NewTransactionRepo(db)   // payment ledger
	promotionRepo := repository.NewPromotionRepo(db)       // promotion codes
	logRepo := repository.NewLogRepo(db)                   // audit trail
	notificationRepo := repository.NewNotificationRepo(db) // user notifications

	// Handlers bundle the repositories per audience.
	authH := handler.NewAuthHandler(cfg, adminRepo, userRepo, sessionRepo)
	adminH := handler.NewAdminHandler(flightRepo, passengerRepo, userRepo, promotionRepo, transactionRepo, logRepo)
	userH := handler.NewUserHandler(flightRepo, passengerRepo, transactionRepo, promotionRepo, sessionRepo, notificationRepo, logRepo)
	publicH := &handler.PublicHandler{
		FlightRepo: flightRepo,                                           // filtered flight query
		Cache:      cache.NewSearchCache(config.LoadCacheConfig(), rdb), // best-effort result cache
	}

	// Token bucket in front of the credential endpoints; only active
	// when Redis is reachable.
	var limiter echo.MiddlewareFunc
	if rdb != nil {
		limiter = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	}

	e := echo.New()                                                    // Create Echo instance
	router.RegisterRoutes(e)                                           // Health check
	router.RegisterAuth(e, authH, cfg.JWTSecret, sessionRepo, limiter) // Login, logout, register, refresh, me
	router.RegisterPublic(e, publicH)                                  // Flight search
	router.RegisterUser(e, userH, cfg.JWTSecret, sessionRepo)          // Booking surface
	router.RegisterAdmin(e, adminH, cfg.JWTSecret, sessionRepo)        // Back office

	// Booking event consumer: writes notifications from ticket.booked
	// events.  It reconnects on its own and must not block startup when
	// the broker is down.
	go func() {
		if err := queue.StartTicketConsumer(notificationRepo); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
