package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/pkg/helpers"
	"github.com/oksasatya/go-ddd-wallet/pkg/mailer"
)

const prefetch = 16

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger("email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled")
		return
	}
	if cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.EmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.Mailgun.Domain == "" || cfg.Mailgun.APIKey == "" || cfg.Mailgun.Sender == "" {
		logger.Fatal("Mailgun not configured")
	}

	q, err := helpers.NewRabbitQueue(cfg.RabbitMQ.URL, cfg.RabbitMQ.EmailQueue)
	if err != nil {
		logger.WithError(err).Fatal("amqp connect")
	}
	defer q.Close()

	msgs, err := q.Consume(prefetch)
	if err != nil {
		logger.WithError(err).Fatal("consume")
	}

	sender := mailer.NewMailgun(cfg.Mailgun)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			handle(ctx, logger, sender, msg)
		}
	}()

	logger.WithField("queue", cfg.RabbitMQ.EmailQueue).Info("email worker listening")
	<-ctx.Done()
	logger.Info("shutting down")
	q.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// handle acks delivered mail, drops jobs that can never succeed and requeues
// the rest.
func handle(ctx context.Context, logger logrus.FieldLogger, sender mailer.Sender, msg amqp.Delivery) {
	entry := logger.WithField("delivery_tag", msg.DeliveryTag)

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	err := mailer.Dispatch(sendCtx, msg.Body, sender)
	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, mailer.ErrMalformedJob):
		entry.WithError(err).Warn("dropping email job")
		_ = msg.Nack(false, false)
	default:
		entry.WithError(err).Error("send failed; requeueing")
		_ = msg.Nack(false, true)
	}
}
