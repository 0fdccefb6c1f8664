package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/logger"
	"max.ks1230/bills-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updateTimeout       = 60
	timeoutSeconds      = 5
)

type tokenGetter interface {
	Token() string
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel messageHandler) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	logger.Info(update.Message.Text, zap.String("user", update.Message.From.UserName))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.From.ID,
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
