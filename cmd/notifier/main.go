package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jobnest/jobnest-api/internal/config"
	"github.com/jobnest/jobnest-api/internal/log"
	"github.com/jobnest/jobnest-api/internal/mail"
	"github.com/jobnest/jobnest-api/internal/metrics"
	"github.com/jobnest/jobnest-api/internal/queue"
)

// The notifier consumes notification events published by the API and turns
// them into templated email. Send failures nack with requeue, so delivery
// retries without touching the API request path.
func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Prod)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics.MustRegister()

	cons, err := queue.NewConsumer(cfg.RabbitURL, cfg.Exchange, cfg.Queue, cfg.BindKey)
	if err != nil {
		logger.Fatal("rabbit consumer init", zap.Error(err))
	}
	defer cons.Close()

	var sender mail.Sender = mail.LogSender{}
	if cfg.PostmarkServerToken != "" {
		sender = mail.NewPostmark(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.SenderEmail)
	} else {
		logger.Warn("no POSTMARK_SERVER_TOKEN, emails go to the log")
	}
	mailer := mail.NewMailer(sender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("notifier up",
		zap.String("exchange", cfg.Exchange),
		zap.String("queue", cfg.Queue),
		zap.Int("workers", cfg.Concurrency),
	)

	if err := cons.Consume(ctx, cfg.Concurrency, func(key string, body []byte) error {
		return dispatch(mailer, key, body)
	}); err != nil {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
}

func dispatch(m *mail.Mailer, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	switch key {
	case queue.KeyUserRegistered:
		var ev queue.UserRegistered
		if err = json.Unmarshal(body, &ev); err == nil {
			err = m.SendVerification(ctx, ev.Email, ev.Code)
		}
	case queue.KeyUserVerified:
		var ev queue.UserVerified
		if err = json.Unmarshal(body, &ev); err == nil {
			err = m.SendWelcome(ctx, ev.Email, ev.Name)
		}
	case queue.KeyResetRequested:
		var ev queue.ResetRequested
		if err = json.Unmarshal(body, &ev); err == nil {
			err = m.SendPasswordReset(ctx, ev.Email, ev.ResetLink)
		}
	case queue.KeyResetDone:
		var ev queue.ResetDone
		if err = json.Unmarshal(body, &ev); err == nil {
			err = m.SendResetSuccess(ctx, ev.Email)
		}
	default:
		log.L().Warn("unknown routing key", zap.String("key", key))
		return nil // drop, never requeue forever
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
		log.L().Error("send mail failed", zap.String("key", key), zap.Error(err))
	}
	metrics.EmailsSent.WithLabelValues(key, outcome).Inc()
	return err
}
