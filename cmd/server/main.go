package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/api/handler"
	"github.com/tams-cso/tams-club-cal-sub001/internal/api/router"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
	"github.com/tams-cso/tams-club-cal-sub001/internal/service"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/database"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/jwt"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/logger"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	// ── configuration ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ── logging ──
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	// ── database ──
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("connect database failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("access database pool failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("run migrations failed", zap.Error(err))
	}

	// ── redis ──
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("connect redis failed", zap.Error(err))
	}
	defer rdb.Close()

	// ── civil clock ──
	clock, err := schedule.LoadClock(cfg.Calendar.Timezone)
	if err != nil {
		zapLogger.Fatal("load calendar timezone failed", zap.Error(err))
	}

	// ── wiring ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, clock, zapLogger)
	h := handler.NewHandler(svc)
	engine := router.Setup(cfg, h, jwtMgr, rdb, zapLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("timezone", cfg.Calendar.Timezone),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// ── graceful shutdown ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}
