package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/andesair/checkin-api/internal/config"
	"github.com/andesair/checkin-api/internal/database"
	"github.com/andesair/checkin-api/internal/handler"
	"github.com/andesair/checkin-api/internal/logger"
	"github.com/andesair/checkin-api/internal/queue"
	"github.com/andesair/checkin-api/internal/repository"
	"github.com/andesair/checkin-api/internal/router"
	"github.com/andesair/checkin-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	flights := repository.NewFlightRepo(db)
	seats := repository.NewSeatRepo(db)
	passes := repository.NewBoardingPassRepo(db)
	agents := repository.NewAgentRepo(db)
	tokens := repository.NewTokenRepo(db)

	publisher := queue.NewPublisher()
	checkin := service.NewCheckinService(flights, seats, passes, publisher)
	manual := service.NewManualAssignmentService(flights, seats, passes)

	go func() {
		if err := queue.StartCheckinConsumer(); err != nil {
			slog.Error("check-in consumer stopped", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, agents, tokens), cfg.JWTSecret)
	router.RegisterFlights(e,
		handler.NewFlightHandler(checkin, manual, cacheCfg, rdb),
		cfg.JWTSecret, rdb, cacheCfg, rlCfg)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
