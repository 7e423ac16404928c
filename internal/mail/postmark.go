package mail

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"
)

type PostmarkSender struct {
	client *postmark.Client
	from   string
}

func NewPostmark(serverToken, accountToken, from string) *PostmarkSender {
	return &PostmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
		from:   from,
	}
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.from,
		To:       msg.To,
		Subject:  msg.Subject,
		HTMLBody: msg.BodyHTML,
		Tag:      msg.Tag,
	})
	if err != nil {
		return err
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}
