package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/layer-3/questrun/adapters/events"
	"github.com/layer-3/questrun/adapters/keys"
	"github.com/layer-3/questrun/adapters/store"
	"github.com/layer-3/questrun/config"
	"github.com/layer-3/questrun/internal/logging"
	"github.com/layer-3/questrun/ports"
	"github.com/layer-3/questrun/service"
	statushttp "github.com/layer-3/questrun/transport/http"
	"github.com/layer-3/questrun/transport/quest"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	once := flag.Bool("once", false, "Run a single cycle and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		// A missing .env file is the normal case outside development.
		slog.Debug("no .env file loaded")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := logging.Setup(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("failed to parse redis URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
	}

	var cookieStore ports.CookieStore
	switch cfg.Cookies.Backend {
	case "redis":
		cookieStore = store.NewRedisStore(redisClient)
	case "memory":
		cookieStore = store.NewMemoryStore()
	default:
		cookieStore = store.NewFileStore(cfg.Cookies.File)
	}

	client, err := quest.NewClient(cfg.BaseURL, cookieStore, logger)
	if err != nil {
		logger.Error("failed to create quest client", "error", err)
		os.Exit(1)
	}

	var eventPub ports.EventPublisher
	if cfg.Events.Enabled {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: redisClient},
			watermill.NewSlogLogger(logger),
		)
		if err != nil {
			logger.Error("failed to create event publisher", "error", err)
			os.Exit(1)
		}
		eventPub = events.NewWatermillPublisher(publisher)
	}

	wallets := keys.NewFileSource(cfg.KeysFile, logger)

	messageSpec := service.MessageSpec{
		Domain:    cfg.Message.Domain,
		Statement: cfg.Message.Statement,
		URI:       cfg.Message.URI,
		Version:   cfg.Message.Version,
		ChainID:   cfg.Message.ChainID,
	}
	pacer := service.NewPacer(service.Pacing{
		Step:       cfg.Pacing.StepDelay.Std(),
		TaskBefore: service.DelayRange{Min: cfg.Pacing.TaskBefore.Min.Std(), Max: cfg.Pacing.TaskBefore.Max.Std()},
		TaskAfter:  service.DelayRange{Min: cfg.Pacing.TaskAfter.Min.Std(), Max: cfg.Pacing.TaskAfter.Max.Std()},
		Account:    service.DelayRange{Min: cfg.Pacing.Account.Min.Std(), Max: cfg.Pacing.Account.Max.Std()},
	})
	retry := service.RetryConfig{
		Attempts: cfg.Retry.Attempts,
		Delay:    cfg.Retry.Delay.Std(),
	}

	authService := service.NewAuthService(client, messageSpec, logger)
	taskService := service.NewTaskService(client, pacer, logger)
	pipeline := service.NewPipeline(authService, client, taskService, retry, pacer, logger)
	scheduler := service.NewScheduler(wallets, client, pipeline, eventPub, pacer, cfg.CycleInterval.Std(), logger)

	if cfg.Server.Port > 0 {
		handlers := statushttp.NewStatusHandlers()
		scheduler.OnSummary(handlers.RecordSummary)
		router := statushttp.SetupRouter(handlers, logger)
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			logger.Info("status server listening", "addr", addr)
			if err := router.Run(addr); err != nil {
				logger.Error("status server stopped", "error", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if *once {
		if _, err := scheduler.RunCycle(ctx); err != nil {
			logger.Error("cycle failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := scheduler.Run(ctx); err != nil {
		logger.Error("runner stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("runner stopped")
}
