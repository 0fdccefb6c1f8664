package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/bills-bot/internal/clients/kafka"
	"max.ks1230/bills-bot/internal/config"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/recurrence"
	"max.ks1230/bills-bot/internal/model/reports"
	"max.ks1230/bills-bot/internal/model/scheduler"
	"max.ks1230/bills-bot/internal/model/storage"
	"max.ks1230/bills-bot/internal/model/summary"
	"max.ks1230/bills-bot/internal/server"
	"max.ks1230/bills-bot/internal/tracing"
)

const (
	serviceName     = "bills-reporter"
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger.Info("Reporter init - start")
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

	store, err := storage.NewShared(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer store.Close()

	resolver, err := recurrence.NewResolver(conf.App())
	if err != nil {
		logger.Fatal("failed to init resolver", zap.Error(err))
	}
	generator := reports.NewGenerator(conf.App(), store, summary.NewSummarizer(conf.App(), resolver))

	sender, err := reports.NewSender(conf.GRPC().AcceptorAddr())
	if err != nil {
		logger.Fatal("failed to init grpc sender", zap.Error(err))
	}
	defer sender.Close()

	location := conf.App().Location()
	consumer, err := kafka.NewConsumer(conf.Kafka(), location, generator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	digests := scheduler.New(conf.Scheduler(), location, store, reports.NewRequester(producer))
	ops := server.New(conf.Ops(), map[string]server.HealthCheck{"storage": store.Ping})

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})
	g.Go(func() error {
		return digests.Run(ctx)
	})
	g.Go(ops.Serve)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return ops.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
}
