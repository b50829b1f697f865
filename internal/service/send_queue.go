package service

// SendQueue is the outbound-message capability the services depend on.
// Implementations are fire-and-forget: Enqueue returns before delivery and
// delivery failures never reach the caller. internal/dispatch provides the
// production implementation.
type SendQueue interface {
	Enqueue(to, body string)
}
