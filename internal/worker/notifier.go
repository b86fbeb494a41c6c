package worker

import (
	"context"
	"cordely/internal/config"
	"cordely/internal/orders"
	"cordely/pkg/domain"
	"cordely/pkg/logger"
	"cordely/pkg/push"
	"cordely/pkg/serrors"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotifierOptions configure how completion pushes are built.
type NotifierOptions struct {
	// ClientBaseURL is the storefront base URL the deep link points at.
	ClientBaseURL string
}

// NewNotifierOptions constructs a NotifierOptions value from the provided
// application config.
func NewNotifierOptions(cfg *config.Config) NotifierOptions {
	return NotifierOptions{
		ClientBaseURL: cfg.Push.ClientBaseURL,
	}
}

// OrderCompletedWorker is a River worker that delivers the "your order is
// ready" push after an order completes. Delivery is at-least-once: a retried
// job sends again rather than risking a customer who never hears back.
//
// Jobs are canceled instead of retried when the order vanished or the device
// token is no longer registered, since neither condition heals with time.
type OrderCompletedWorker struct {
	river.WorkerDefaults[orders.OrderCompletedArgs]

	// orders resolves the completed order and its stored push token.
	orders orders.Orders
	// notifier performs the actual push delivery.
	notifier push.Notifier
	// options holds the storefront base URL for deep links.
	options NotifierOptions
}

// NewOrderCompletedWorker constructs an OrderCompletedWorker using the
// provided order service and push notifier.
func NewOrderCompletedWorker(orders orders.Orders, notifier push.Notifier, options NotifierOptions) *OrderCompletedWorker {
	return &OrderCompletedWorker{
		orders:   orders,
		notifier: notifier,
		options:  options,
	}
}

// Work delivers the completion push for a single order.
func (w *OrderCompletedWorker) Work(ctx context.Context, job *river.Job[orders.OrderCompletedArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("siteKey", job.Args.SiteKey),
		zap.String("orderID", job.Args.OrderID))

	id, err := uuid.Parse(job.Args.OrderID)
	if err != nil {
		// a malformed ID never becomes valid, retrying is pointless
		return river.JobCancel(fmt.Errorf("invalid order ID: %w", err)) //nolint: wrapcheck
	}

	order, err := w.orders.Order(ctx, job.Args.SiteKey, domain.OrderID(id))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error loading completed order", zap.Error(err))

		return fmt.Errorf("could not get order: %w", err)
	}

	if order.CustomerPushToken == "" {
		logger.Info(ctx, "order has no push token, nothing to deliver")

		return nil
	}

	err = w.notifier.Send(ctx, order.CustomerPushToken, push.Notification{
		Title: "Your order is ready",
		Body:  fmt.Sprintf("Order #%d is ready for pickup", order.OrderNo),
		Link:  w.deepLink(job.Args.SiteKey, order.OrderNo),
	})
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			// the device token is stale; the customer will see the order board instead
			logger.Warn(ctx, "push token no longer registered", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error delivering completion push", zap.Error(err))

		return fmt.Errorf("could not send push: %w", err)
	}

	logger.Info(ctx, "completion push delivered", zap.Int("orderNo", order.OrderNo))

	return nil
}

// deepLink builds the storefront URL opened from the notification. The done
// parameter tells the storefront which order number to highlight.
func (w *OrderCompletedWorker) deepLink(siteKey string, orderNo int) string {
	values := url.Values{}
	values.Set("siteKey", siteKey)
	values.Set("done", strconv.Itoa(orderNo))

	return w.options.ClientBaseURL + "/?" + values.Encode()
}
