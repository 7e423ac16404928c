package queue

import "context"

// Routing keys on the events exchange. The notifier binds to these; other
// consumers can bind their own queues without touching the API.
const (
	KeyUserRegistered = "user.registered"
	KeyUserVerified   = "user.verified"
	KeyResetRequested = "password.reset_requested"
	KeyResetDone      = "password.reset_done"
)

type Publisher interface {
	Publish(ctx context.Context, key string, event any, reqID string) error
	Close() error
}

// NoopPub drops events; used in tests and when no broker is configured.
type NoopPub struct{}

func NewNoop() Publisher { return NoopPub{} }

func (NoopPub) Publish(ctx context.Context, key string, event any, reqID string) error {
	return nil
}
func (NoopPub) Close() error { return nil }

type UserRegistered struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

type UserVerified struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ResetRequested struct {
	Email     string `json:"email"`
	ResetLink string `json:"reset_link"`
}

type ResetDone struct {
	Email string `json:"email"`
}
