package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobnest/jobnest-api/internal/log"
)

type Message struct {
	To       string
	Subject  string
	BodyHTML string
	Tag      string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes the message to the log instead of delivering it. Used in
// dev and when no Postmark token is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	log.L().Info("mail (log sender)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("tag", msg.Tag),
	)
	return nil
}
