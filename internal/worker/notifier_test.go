package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cordely/internal/orders"
	mockorders "cordely/internal/orders/mock"
	"cordely/internal/worker"
	"cordely/pkg/domain"
	"cordely/pkg/logger"
	"cordely/pkg/push"
	mockpush "cordely/pkg/push/mock"
	"cordely/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, siteKey, orderID string) *river.Job[orders.OrderCompletedArgs] {
	return &river.Job[orders.OrderCompletedArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   orders.OrderCompletedArgs{SiteKey: siteKey, OrderID: orderID},
	}
}

func newTestWorker(t *testing.T) (*mockorders.MockOrders, *mockpush.MockNotifier, *worker.OrderCompletedWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	o := mockorders.NewMockOrders(ctrl)
	n := mockpush.NewMockNotifier(ctrl)
	w := worker.NewOrderCompletedWorker(o, n, worker.NotifierOptions{
		ClientBaseURL: "https://order.example",
	})

	return o, n, w
}

func TestOrderCompletedWorker_Work_SendsPushWithDeepLink(t *testing.T) {
	o, n, w := newTestWorker(t)

	id := uuid.New()
	o.EXPECT().Order(gomock.Any(), "shopA", domain.OrderID(id)).Return(&domain.Order{
		ID:                domain.OrderID(id),
		OrderNo:           12,
		Completed:         true,
		CustomerPushToken: "token-1",
	}, nil)
	n.EXPECT().Send(gomock.Any(), "token-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, notification push.Notification) error {
			require.Equal(t, "https://order.example/?done=12&siteKey=shopA", notification.Link)
			require.Contains(t, notification.Body, "#12")

			return nil
		},
	)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "shopA", id.String())))
}

func TestOrderCompletedWorker_Work_NoTokenIsNoop(t *testing.T) {
	o, _, w := newTestWorker(t)

	id := uuid.New()
	// no Send expectation: without a token there is nothing to deliver
	o.EXPECT().Order(gomock.Any(), "shopA", domain.OrderID(id)).Return(&domain.Order{
		ID:        domain.OrderID(id),
		OrderNo:   12,
		Completed: true,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2, "shopA", id.String())))
}

func TestOrderCompletedWorker_Work_MissingOrderCancels(t *testing.T) {
	o, _, w := newTestWorker(t)

	id := uuid.New()
	o.EXPECT().Order(gomock.Any(), "shopA", domain.OrderID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "order not found"))

	err := w.Work(context.Background(), makeJob(3, "shopA", id.String()))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestOrderCompletedWorker_Work_StaleTokenCancels(t *testing.T) {
	o, n, w := newTestWorker(t)

	id := uuid.New()
	o.EXPECT().Order(gomock.Any(), "shopA", domain.OrderID(id)).Return(&domain.Order{
		ID:                domain.OrderID(id),
		OrderNo:           12,
		CustomerPushToken: "token-gone",
	}, nil)
	n.EXPECT().Send(gomock.Any(), "token-gone", gomock.Any()).
		Return(serrors.With(serrors.ErrNotFound, "token not registered"))

	err := w.Work(context.Background(), makeJob(4, "shopA", id.String()))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestOrderCompletedWorker_Work_TransientFailureRetries(t *testing.T) {
	o, n, w := newTestWorker(t)

	id := uuid.New()
	o.EXPECT().Order(gomock.Any(), "shopA", domain.OrderID(id)).Return(&domain.Order{
		ID:                domain.OrderID(id),
		OrderNo:           12,
		CustomerPushToken: "token-1",
	}, nil)
	n.EXPECT().Send(gomock.Any(), "token-1", gomock.Any()).Return(errors.New("gateway timeout"))

	err := w.Work(context.Background(), makeJob(5, "shopA", id.String()))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "transient failures should be retried, not canceled")
}

func TestOrderCompletedWorker_Work_MalformedIDCancels(t *testing.T) {
	_, _, w := newTestWorker(t)

	err := w.Work(context.Background(), makeJob(6, "shopA", "not-a-uuid"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
