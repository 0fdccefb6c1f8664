package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/api/digest"
	"max.ks1230/bills-bot/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, req digest.Request) digest.Result
}

type reportSender interface {
	SendReport(ctx context.Context, report digest.Result) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	location      *time.Location
	generator     reportGenerator
	sender        reportSender
}

func NewConsumer(cfg consumerConfig, loc *time.Location, generator reportGenerator, sender reportSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.DigestTopic(),
		location:      loc,
		generator:     generator,
		sender:        sender,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil && ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		req, err := digest.UnmarshalRequest(message.Value, c.location)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received digest request",
				zap.ByteString("key", message.Key),
				zap.Int64("userID", req.UserID),
				zap.String("source", req.Source),
			)
			c.processRequest(session.Context(), req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processRequest(ctx context.Context, req digest.Request) {
	report := c.generator.GenerateReport(ctx, req)
	err := c.sender.SendReport(ctx, report)
	if err != nil {
		logger.Error("failed to send report", zap.Error(err), zap.String("requestID", req.RequestID))
	}
}
