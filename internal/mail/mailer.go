package mail

import "context"

// Mailer renders the templated messages and hands them to a Sender.
type Mailer struct {
	sender Sender
}

func NewMailer(s Sender) *Mailer {
	return &Mailer{sender: s}
}

func (m *Mailer) SendVerification(ctx context.Context, to, code string) error {
	return m.sender.Send(ctx, Message{
		To:       to,
		Subject:  "Verify your email",
		BodyHTML: renderVerification(code),
		Tag:      "email-verification",
	})
}

func (m *Mailer) SendWelcome(ctx context.Context, to, name string) error {
	return m.sender.Send(ctx, Message{
		To:       to,
		Subject:  "Welcome to Job Nest",
		BodyHTML: renderWelcome(name),
		Tag:      "welcome",
	})
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	return m.sender.Send(ctx, Message{
		To:       to,
		Subject:  "Password Reset Request",
		BodyHTML: renderResetRequest(resetLink),
		Tag:      "password-reset",
	})
}

func (m *Mailer) SendResetSuccess(ctx context.Context, to string) error {
	return m.sender.Send(ctx, Message{
		To:       to,
		Subject:  "Password Reset Success",
		BodyHTML: resetSuccessTemplate,
		Tag:      "password-reset",
	})
}
