package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/bills-bot/internal/clients/cache"
	"max.ks1230/bills-bot/internal/clients/kafka"
	"max.ks1230/bills-bot/internal/clients/tg"
	"max.ks1230/bills-bot/internal/config"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/messages"
	"max.ks1230/bills-bot/internal/model/recurrence"
	"max.ks1230/bills-bot/internal/model/reports"
	"max.ks1230/bills-bot/internal/model/storage"
	"max.ks1230/bills-bot/internal/model/summary"
	"max.ks1230/bills-bot/internal/server"
	"max.ks1230/bills-bot/internal/tracing"
)

const (
	serviceName     = "bills-bot"
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger.Info("Bot init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	tracer, err := tracing.Init(serviceName, conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer tracer.Close()

	store, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer store.Close()

	resolver, err := recurrence.NewResolver(conf.App())
	if err != nil {
		logger.Fatal("failed to init resolver", zap.Error(err))
	}
	summarizer := summary.NewSummarizer(conf.App(), resolver)

	reportCache, err := cache.New(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init cache", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client", zap.Error(err))
	}

	handler := messages.NewHandler(conf.App(), store, reportCache, summarizer, reports.NewRequester(producer))
	msgService := messages.NewService(client, handler)

	acceptor, err := reports.NewServer(conf.GRPC().AcceptorAddr(), reports.NewDeliverer(client))
	if err != nil {
		logger.Fatal("failed to init grpc server", zap.Error(err))
	}

	ops := server.New(conf.Ops(), map[string]server.HealthCheck{"storage": store.Ping})

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})
	g.Go(acceptor.Serve)
	g.Go(ops.Serve)
	g.Go(func() error {
		<-ctx.Done()
		acceptor.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return ops.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}
