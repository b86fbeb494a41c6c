package orders

import (
	"github.com/riverqueue/river"
)

// OrderCompletedArgs is the payload of the push-notification job enqueued when
// an order flips to completed. Delivery is at-least-once; the notifier sends
// whatever it receives without deduplication.
type OrderCompletedArgs struct {
	// SiteKey is the site the order belongs to.
	SiteKey string `json:"siteKey"`
	// OrderID identifies the completed order.
	OrderID string `json:"orderId"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the notifier worker.
func (args OrderCompletedArgs) Kind() string { return "OrderCompletedPush" }

// InsertOpts returns the River options that control how the job is enqueued.
// No uniqueness constraints: a re-completed order never happens at the storage
// level, and duplicate pushes are acceptable if a job is retried.
func (args OrderCompletedArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
