package domain

import "context"

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=domain

// Notification is one reminder ready for delivery. To is an opaque address:
// an email for the mail backends, an Expo push token for the push backend.
type Notification struct {
	To        string
	Subject   string
	Body      string
	BodyHTML  string
	ItemName  string
	DayOffset int
	Tier      Tier
}

// Notifier delivers a single notification. A nil error means the backend
// confirmed the send; only then may the caller record a cooldown entry.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
