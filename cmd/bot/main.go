package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/bot"
	"github.com/dkenzhe/college-bot/internal/repository"
	"github.com/dkenzhe/college-bot/internal/service"
	"github.com/dkenzhe/college-bot/internal/session"
	"github.com/dkenzhe/college-bot/internal/telegram"
	"github.com/dkenzhe/college-bot/pkg/cache"
	"github.com/dkenzhe/college-bot/pkg/config"
	"github.com/dkenzhe/college-bot/pkg/database"
	"github.com/dkenzhe/college-bot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if cfg.Database.Bootstrap {
		if err := database.Bootstrap(ctx, db); err != nil {
			logr.Fatal("failed to bootstrap schema", zap.Error(err))
		}
	}
	if cfg.Database.Seed {
		if err := database.Seed(ctx, db); err != nil {
			logr.Fatal("failed to seed data", zap.Error(err))
		}
	}

	sessions, closeSessions, err := newSessionStore(cfg, logr)
	if err != nil {
		logr.Fatal("failed to init session store", zap.Error(err))
	}
	defer closeSessions()

	metrics := service.NewMetricsService()

	dispatcher := bot.NewDispatcher(bot.Deps{
		Students: service.NewStudentService(repository.NewStudentRepository(db), logr),
		Teachers: service.NewTeacherService(repository.NewTeacherRepository(db), logr),
		Grades:   service.NewGradeService(repository.NewGradeRepository(db), logr),
		Refs:     service.NewReferenceService(repository.NewReferenceRepository(db), logr),
		Stats:    service.NewStatsService(repository.NewStatsRepository(db), logr),
		Sessions: sessions,
		Metrics:  metrics,
		Logger:   logr,
	})

	tgbot, err := newTelegramBot(cfg, dispatcher, logr)
	if err != nil {
		logr.Fatal("failed to start telegram bot", zap.Error(err))
	}

	if cfg.Ops.Enabled {
		go runOpsServer(cfg, metrics, logr)
	}

	go tgbot.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	tgbot.Stop()
}

// newTelegramBot retries bot construction: transient network failures at
// startup should not kill the process.
func newTelegramBot(cfg *config.Config, dispatcher *bot.Dispatcher, logr *zap.Logger) (*telegram.Bot, error) {
	var lastErr error
	attempts := cfg.Telegram.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		tgbot, err := telegram.New(cfg.Telegram, dispatcher, logr)
		if err == nil {
			return tgbot, nil
		}
		lastErr = err
		logr.Warn("telegram bot init failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if attempt < attempts {
			time.Sleep(cfg.Telegram.RetryDelay)
		}
	}
	return nil, lastErr
}

func newSessionStore(cfg *config.Config, logr *zap.Logger) (session.Store, func(), error) {
	if cfg.Session.Backend == "redis" {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client, logr), func() { _ = client.Close() }, nil
	}
	return session.NewMemoryStore(), func() {}, nil
}

func runOpsServer(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Ops.Port)
	logr.Info("ops server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logr.Error("ops server failed", zap.Error(err))
	}
}
