package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/jobnest/jobnest-api/docs"
	"github.com/jobnest/jobnest-api/internal/config"
	api "github.com/jobnest/jobnest-api/internal/http"
	"github.com/jobnest/jobnest-api/internal/log"
	"github.com/jobnest/jobnest-api/internal/metrics"
	"github.com/jobnest/jobnest-api/internal/queue"
	"github.com/jobnest/jobnest-api/internal/repo"
)

// @title Job Nest API
// @version 0.1.0
// @description Job board backend: auth, jobs, companies, applications, saved jobs.
// @schemes http https
// @BasePath /
func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Prod)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	var rds *repo.Redis
	if cfg.RedisAddr != "" {
		rds = repo.NewRedis(cfg.RedisAddr)
		if err := rds.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
			rds = nil
		} else {
			defer rds.Close()
		}
	}

	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		p, err := queue.NewRabbit(cfg.RabbitURL, cfg.Exchange)
		if err != nil {
			logger.Fatal("rabbit connect", zap.Error(err))
		}
		pub = p
	} else {
		logger.Warn("no RABBIT_URL, notification events are dropped")
	}
	defer pub.Close()

	h := api.NewHandler(store, cfg, rds, pub)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	logger.Info("jobnest-api listening", zap.String("port", cfg.Port))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		logger.Error("server error", zap.Error(err))
	}
}
