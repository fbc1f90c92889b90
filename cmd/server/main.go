package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/database"
	"github.com/svce/hostel-management/internal/handler"
	"github.com/svce/hostel-management/internal/middleware"
	"github.com/svce/hostel-management/internal/repository"
	"github.com/svce/hostel-management/internal/router"
)

func main() {
	// Load .env when present; a missing file is fine because every config
	// value has a default.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Create the full schema up front so handlers never have to probe
	// sqlite_master before touching a table.
	if err := database.InitSchema(context.Background(), db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	roomRepo := repository.NewRoomRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	adminRepo := repository.NewAdminRepo(db)

	authHandler := handler.NewAuthHandler(cfg, adminRepo)
	roomHandler := handler.NewRoomHandler(roomRepo)
	memberHandler := handler.NewMemberHandler(memberRepo)
	paymentHandler := handler.NewPaymentHandler(cfg, paymentRepo, memberRepo)
	reportHandler := handler.NewReportHandler(roomRepo)

	// Pick the Authenticator.  trust-all is the historical development
	// behavior; bearer turns on real verification of login tokens.
	var authn middleware.Authenticator = middleware.TrustAll{Username: cfg.AdminUsername}
	if cfg.AuthMode == "bearer" {
		if cfg.JWTSecret == "" {
			log.Fatal("AUTH_MODE=bearer requires JWT_SECRET")
		}
		authn = middleware.BearerAuth{Secret: cfg.JWTSecret}
	} else {
		log.Printf("auth mode is trust-all: every request is treated as admin")
	}

	// The rate limiter degrades to a pass-through when disabled or when
	// Redis is unreachable.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, authHandler, roomHandler, memberHandler, paymentHandler, reportHandler, authn, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
