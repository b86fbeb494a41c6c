package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"cordely/pkg/domain"
	"cordely/pkg/serrors"
)

func TestAccess_FreePlanAlwaysOpen(t *testing.T) {
	st, _, b := newTestBiller(t)

	profile := &domain.SiteBillingProfile{SiteKey: "shopA", IsFreePlan: true}
	// the gate and its status side both load the profile
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(profile, nil).Times(2)

	decision, err := b.Access(context.Background(), "shopA", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Open || decision.Overlay {
		t.Fatalf("free plan should be open without overlay, got %+v", decision)
	}
	if decision.State != domain.AccessStateFree {
		t.Fatalf("expected free state, got %s", decision.State)
	}
}

func TestAccess_NoCustomerAlwaysBlocked(t *testing.T) {
	st, _, b := newTestBiller(t)

	profile := &domain.SiteBillingProfile{SiteKey: "shopA", OwnerEmail: "owner@example.com"}
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(profile, nil).Times(2)

	decision, err := b.Access(context.Background(), "shopA", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Open || !decision.Overlay {
		t.Fatalf("site without customer should be blocked, got %+v", decision)
	}
	if decision.State != domain.AccessStateNone {
		t.Fatalf("expected none state, got %s", decision.State)
	}
}

func TestAccess_ActiveSubscriptionOpens(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil).Times(2)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_1", Status: domain.SubscriptionStatusActive},
	}, nil)

	decision, err := b.Access(context.Background(), "shopA", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Open {
		t.Fatalf("active subscription should open the gate, got %+v", decision)
	}
	if decision.State != domain.AccessStateActive {
		t.Fatalf("expected active state, got %s", decision.State)
	}
}

func TestAccess_PendingCancelStaysOpen(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil).Times(2)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_1", Status: domain.SubscriptionStatusActive, CancelAtPeriodEnd: true},
	}, nil)

	decision, err := b.Access(context.Background(), "shopA", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Open {
		t.Fatalf("pending cancel should stay open until period end, got %+v", decision)
	}
	if decision.State != domain.AccessStatePendingCancel {
		t.Fatalf("expected pending_cancel state, got %s", decision.State)
	}
}

func TestAccess_ProviderFailureBlocks(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil).Times(2)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return(nil, errors.New("provider down"))

	decision, err := b.Access(context.Background(), "shopA", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Open {
		t.Fatalf("provider failure must fail closed, got %+v", decision)
	}
}

func TestAccess_SessionRoutesThroughVerification(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil).Times(2)
	pay.EXPECT().CheckoutSession(gomock.Any(), "cs_1").Return(&domain.CheckoutSession{
		ID:         "cs_1",
		CustomerID: "cus_1",
		SiteKey:    "shopA",
	}, nil)
	st.EXPECT().LinkCustomer(gomock.Any(), "shopA", "cus_1").Return(nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_1", Status: domain.SubscriptionStatusActive},
	}, nil)

	decision, err := b.Access(context.Background(), "shopA", "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Open {
		t.Fatalf("verified session with active subscription should open, got %+v", decision)
	}
}

func TestAccess_UnknownSite(t *testing.T) {
	st, _, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "nope").Return(nil, nil).Times(2)

	_, err := b.Access(context.Background(), "nope", "")
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAccess_CancelledContext(t *testing.T) {
	st, _, b := newTestBiller(t)

	ctx, cancel := context.WithCancel(context.Background())

	// both sides block until well after the context is cancelled; their
	// results must be discarded
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").DoAndReturn(
		func(ctx context.Context, _ string) (*domain.SiteBillingProfile, error) {
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)

			return nil, nil
		}).Times(2)

	cancel()

	_, err := b.Access(ctx, "shopA", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
