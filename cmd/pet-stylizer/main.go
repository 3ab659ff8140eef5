package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisCache "petStylizer/internal/cache/redis"
	"petStylizer/internal/clients/gemini"
	"petStylizer/internal/clients/imgbb"
	"petStylizer/internal/clients/rembg"
	"petStylizer/internal/config"
	"petStylizer/internal/http-server/router"
	"petStylizer/internal/janitor"
	"petStylizer/internal/kafka/consumer"
	"petStylizer/internal/kafka/producer"
	"petStylizer/internal/lib/logger/handlers/slogpretty"
	"petStylizer/internal/lib/logger/sl"
	"petStylizer/internal/processor"
	"petStylizer/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title        Pet Stylizer API
// @version      1.0
// @description  Turns a pet photo into two stylized, background-free images hosted on imgBB.
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting pet stylizer", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := gemini.New(ctx, &cfg.Gemini, log)
	if err != nil {
		log.Error("failed to create gemini client", sl.Err(err))
		os.Exit(1)
	}

	stylizer := processor.NewStylizer(
		log,
		generator,
		rembg.New(&cfg.Rembg, log),
		imgbb.New(&cfg.ImgBB, log),
	)

	deps := router.Deps{
		Stylizer:      stylizer,
		MaxUploadSize: cfg.HTTPServer.MaxUploadSize,
	}

	var closers []func() error

	if cfg.Cache.Enabled {
		cache := redisCache.New(&cfg.Cache, time.Duration(cfg.ImgBB.Expiration)*time.Second)
		if err = cache.Ping(ctx); err != nil {
			log.Error("failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}
		deps.Cache = cache
		closers = append(closers, cache.Close)

		log.Info("result cache enabled", slog.String("addr", cfg.Cache.Addr))
	}

	if cfg.Async.Enabled {
		storage, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}

		kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka producer", sl.Err(err))
			os.Exit(1)
		}

		kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka consumer", sl.Err(err))
			os.Exit(1)
		}

		imageProcessor := processor.NewImageProcessor(log, storage, stylizer)

		consumerDone := make(chan struct{})
		go func() {
			defer close(consumerDone)
			kafkaConsumer.ReadMessages(ctx, imageProcessor.ProcessMessage)
		}()

		cleaner := janitor.New(log, storage, cfg.Async.UploadDir, cfg.Async.Retention)
		if err = cleaner.Start(cfg.Async.CleanupSchedule); err != nil {
			log.Error("failed to start janitor", sl.Err(err))
			os.Exit(1)
		}

		deps.Async = &router.Async{
			Store:     storage,
			Producer:  kafkaProducer,
			UploadDir: cfg.Async.UploadDir,
		}

		// closed in reverse order
		closers = append(closers,
			storage.Close,
			func() error { cleaner.Stop(); return nil },
			kafkaProducer.Close,
			func() error { <-consumerDone; return kafkaConsumer.Close() },
		)

		log.Info("async generations enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, deps),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
	}

	for i := len(closers) - 1; i >= 0; i-- {
		if err = closers[i](); err != nil {
			log.Error("failed to close resource", sl.Err(err))
		}
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
