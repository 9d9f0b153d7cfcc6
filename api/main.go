package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
	"github.com/rogerio-castellano/ink-to-doc/internal/config"
	"github.com/rogerio-castellano/ink-to-doc/internal/db"
	api "github.com/rogerio-castellano/ink-to-doc/internal/http"
	"github.com/rogerio-castellano/ink-to-doc/internal/http/ban"
	rl "github.com/rogerio-castellano/ink-to-doc/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ink-to-doc/internal/ocr"
	"github.com/rogerio-castellano/ink-to-doc/internal/redissvc"
	"github.com/rogerio-castellano/ink-to-doc/internal/repo"

	"github.com/rogerio-castellano/ink-to-doc/internal/http/handlers"
)

var ctx = context.Background()

// @title Ink to Doc API
// @version 1.0
// @description REST API for the handwritten-notes digitizer: accounts, sessions and OCR uploads.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey TokenHeader
// @in header
// @name x-auth-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	// Refuse to start without a signing key rather than issue unsigned
	// tokens later.
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not configured")
	}
	auth.Configure([]byte(cfg.JWTSecret), cfg.TokenTTL)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsURL); err != nil {
		log.Fatal("❌ Could not apply migrations:", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	ban.SetRedisService(redisService)

	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetOCRClient(ocr.NewClient(cfg.OCRBaseURL))
	handlers.SetTextCache(redissvc.NewRedisTextCache(redisService, time.Hour))

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Println("✅ Server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
