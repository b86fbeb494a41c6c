// Package push defines the interface used to deliver push notifications to
// storefront customers through a backing provider.
package push

import "context"

// Notification is a single message delivered to one device token.
type Notification struct {
	// Title is the notification headline.
	Title string
	// Body is the notification text.
	Body string
	// Link is opened when the customer taps the notification.
	Link string
}

// Notifier is the abstraction for push delivery providers.
//
//go:generate mockgen -package mockpush -source=interface.go -destination=mock/mockpush.go *
type Notifier interface {
	// Send delivers the notification to the device identified by token.
	Send(ctx context.Context, token string, notification Notification) error
}
