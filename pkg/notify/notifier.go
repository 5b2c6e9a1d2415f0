package notify

// Notifier is the outbound delivery port. Implementations are expected to
// be best-effort; callers treat failures as soft and keep going.
type Notifier interface {
	Email(to []string, subject, body string) error
	SMS(to []string, body string) error
	Push(userIDs []string, title, body string) error
}

// Channel names as stored on alerts.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)
