package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureSender struct {
	msgs []Message
}

func (c *captureSender) Send(ctx context.Context, msg Message) error {
	c.msgs = append(c.msgs, msg)
	return nil
}

func TestMailer_SendVerification(t *testing.T) {
	cs := &captureSender{}
	m := NewMailer(cs)

	require.NoError(t, m.SendVerification(context.Background(), "a@x.com", "123456"))
	require.Len(t, cs.msgs, 1)

	msg := cs.msgs[0]
	require.Equal(t, "a@x.com", msg.To)
	require.Equal(t, "email-verification", msg.Tag)
	require.Contains(t, msg.BodyHTML, "123456")
	require.NotContains(t, msg.BodyHTML, "{verificationCode}")
}

func TestMailer_SendWelcome(t *testing.T) {
	cs := &captureSender{}
	m := NewMailer(cs)

	require.NoError(t, m.SendWelcome(context.Background(), "a@x.com", "Alice"))
	require.Contains(t, cs.msgs[0].BodyHTML, "Alice")
	require.NotContains(t, cs.msgs[0].BodyHTML, "{name}")
}

func TestMailer_SendPasswordReset(t *testing.T) {
	cs := &captureSender{}
	m := NewMailer(cs)

	link := "http://localhost:5173/reset-password/abcdef"
	require.NoError(t, m.SendPasswordReset(context.Background(), "a@x.com", link))
	require.Contains(t, cs.msgs[0].BodyHTML, link)
	require.Equal(t, "password-reset", cs.msgs[0].Tag)
}

func TestMailer_SendResetSuccess(t *testing.T) {
	cs := &captureSender{}
	m := NewMailer(cs)

	require.NoError(t, m.SendResetSuccess(context.Background(), "a@x.com"))
	require.Contains(t, cs.msgs[0].BodyHTML, "Password Reset Successful")
}
