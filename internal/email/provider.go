package email

// Email is a single outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends notification emails. Sending is always best effort for
// this portal: a failed notification is logged, never surfaced to the
// caller of a lifecycle operation.
type Provider interface {
	Send(email *Email) error
}

// NoopProvider is used when email is disabled in configuration.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	return nil
}
