package sender

// Sender delivers a rendered HTML email. No retry, no delivery confirmation.
type Sender interface {
	Send(from, to, subject, htmlBody string) error
}
