package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/backup"
	"github.com/Spigel00/work-force-matchup/internal/config"
	"github.com/Spigel00/work-force-matchup/internal/notify"
	"github.com/Spigel00/work-force-matchup/internal/server"
	"github.com/Spigel00/work-force-matchup/internal/storage"
	"github.com/Spigel00/work-force-matchup/internal/storage/memory"
	"github.com/Spigel00/work-force-matchup/internal/storage/postgres"
	redisstore "github.com/Spigel00/work-force-matchup/internal/storage/redis"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	var rdb *goredis.Client
	if cfg.NeedsRedis() {
		rdb, err = redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("init redis: %v", err)
		}
		defer rdb.Close()
	}

	kv, closeKV, err := openStorage(ctx, cfg, rdb)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	defer closeKV()

	events, closers, err := openNotifiers(cfg, rdb, logger)
	if err != nil {
		log.Fatalf("init notifications: %v", err)
	}
	for _, c := range closers {
		defer c.Close()
	}

	application := app.New(ctx, kv, app.Options{
		Namespace:     cfg.StorageNamespace,
		ProfilePolicy: cfg.ProfilePolicy,
		Notifier:      events,
		Logger:        logger,
	})

	if cfg.BackupSchedule != "" {
		backups := backup.New(application, cfg.BackupDir, cfg.BackupSchedule, logger)
		if err := backups.Start(ctx); err != nil {
			log.Fatalf("start backups: %v", err)
		}
		defer backups.Stop()
	}

	srv := server.New(cfg, application, logger)

	go func() {
		logger.Info("work-force-matchup listening", "addr", cfg.HTTPAddress(), "storage", cfg.StorageDriver)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", "err", err)
	}
}

func openStorage(ctx context.Context, cfg config.Config, rdb *goredis.Client) (storage.KV, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StorageRedis:
		return redisstore.NewStore(rdb), func() {}, nil
	default:
		return memory.New(), func() {}, nil
	}
}

func openNotifiers(cfg config.Config, rdb *goredis.Client, logger *slog.Logger) (notify.Notifier, []io.Closer, error) {
	var sinks notify.Multi
	var closers []io.Closer
	for _, driver := range cfg.NotifyDrivers {
		switch driver {
		case config.NotifyLog:
			sinks = append(sinks, notify.NewLog(logger))
		case config.NotifyRedis:
			sinks = append(sinks, notify.NewRedis(rdb, cfg.NotifyChannel, logger))
		case config.NotifyNATS:
			pub, err := notify.ConnectNATS(cfg.NATSURL, cfg.NotifyChannel, logger)
			if err != nil {
				return nil, nil, err
			}
			sinks = append(sinks, pub)
			closers = append(closers, pub)
		}
	}
	if len(sinks) == 1 {
		return sinks[0], closers, nil
	}
	return sinks, closers, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
