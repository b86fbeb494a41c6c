package billing_test

import (
	"context"
	"cordely/internal/billing"
	"errors"
	"testing"

	mockpayment "cordely/pkg/payment/mock"
	mockstorage "cordely/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"cordely/pkg/domain"
	"cordely/pkg/logger"
	"cordely/pkg/payment"
	"cordely/pkg/serrors"
)

func newTestBiller(t *testing.T) (*mockstorage.MockStorage, *mockpayment.MockClient, billing.Biller) {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pay := mockpayment.NewMockClient(ctrl)
	b := billing.New(st, pay, billing.Options{
		PriceID:    "price_123",
		AppBaseURL: "https://console.example",
	})

	return st, pay, b
}

func linkedProfile() *domain.SiteBillingProfile {
	return &domain.SiteBillingProfile{
		SiteKey:          "shopA",
		SiteName:         "Shop A",
		StripeCustomerID: "cus_1",
		OwnerEmail:       "owner@example.com",
	}
}

func TestBilling_Status_Active(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_1", Status: domain.SubscriptionStatusActive},
	}, nil)

	status, err := b.Status(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.EntitlementActive {
		t.Fatalf("expected active, got %s", status)
	}
}

func TestBilling_Status_SetupModeSkipsProvider(t *testing.T) {
	st, _, b := newTestBiller(t)

	profile := linkedProfile()
	profile.SetupMode = true
	// no Subscriptions expectation: the provider must not be called
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(profile, nil)

	status, err := b.Status(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.EntitlementSetupMode {
		t.Fatalf("expected setup_mode, got %s", status)
	}
}

func TestBilling_Status_ProviderFailureFailsClosed(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return(nil, errors.New("provider down"))

	status, err := b.Status(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("provider failure should not surface as an error: %v", err)
	}
	if status != domain.EntitlementNone {
		t.Fatalf("expected fail-closed none, got %s", status)
	}
}

func TestBilling_Status_UnknownSite(t *testing.T) {
	st, _, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "nope").Return(nil, nil)

	_, err := b.Status(context.Background(), "nope")
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBilling_Checkout_CreatesSession(t *testing.T) {
	st, pay, b := newTestBiller(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return(nil, nil)
	pay.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payment.CheckoutParams) (*domain.CheckoutSession, error) {
			if params.SiteKey != "shopA" {
				t.Fatalf("expected siteKey shopA, got %q", params.SiteKey)
			}
			if params.CustomerID != "cus_1" {
				t.Fatalf("expected session bound to cus_1, got %q", params.CustomerID)
			}
			if params.PriceID != "price_123" {
				t.Fatalf("expected configured price, got %q", params.PriceID)
			}
			if params.SuccessURL != "https://console.example/?session_id={CHECKOUT_SESSION_ID}" {
				t.Fatalf("unexpected success URL %q", params.SuccessURL)
			}
			if params.CancelURL != "https://console.example" {
				t.Fatalf("unexpected cancel URL %q", params.CancelURL)
			}

			return &domain.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
		})

	redirect, err := b.Checkout(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.AlreadyActive() {
		t.Fatalf("expected a fresh session, got subscription %q", redirect.SubscriptionID)
	}
	if redirect.URL != "https://pay.example/cs_1" {
		t.Fatalf("unexpected redirect URL %q", redirect.URL)
	}
}

func TestBilling_Checkout_AlreadyActive(t *testing.T) {
	st, pay, b := newTestBiller(t)

	// no CreateCheckoutSession expectation: an existing live subscription
	// must short-circuit before a session is opened
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_live", Status: domain.SubscriptionStatusActive},
	}, nil)

	redirect, err := b.Checkout(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !redirect.AlreadyActive() {
		t.Fatalf("expected already-active redirect, got %+v", redirect)
	}
	if redirect.SubscriptionID != "sub_live" {
		t.Fatalf("expected existing subscription id, got %q", redirect.SubscriptionID)
	}
}

func TestBilling_Checkout_PendingCancelGetsNewSession(t *testing.T) {
	st, pay, b := newTestBiller(t)

	// a subscription winding down at period end must not block re-subscribing
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_pending", Status: domain.SubscriptionStatusActive, CancelAtPeriodEnd: true},
		{ID: "sub_old", Status: domain.SubscriptionStatusCanceled},
	}, nil)
	pay.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)

	redirect, err := b.Checkout(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.AlreadyActive() {
		t.Fatalf("pending-cancel subscription must not short-circuit checkout; got subscription %q",
			redirect.SubscriptionID)
	}
	if redirect.URL != "https://pay.example/cs_1" {
		t.Fatalf("unexpected redirect URL %q", redirect.URL)
	}
}

func TestBilling_Checkout_TrialingAlreadyActive(t *testing.T) {
	st, pay, b := newTestBiller(t)

	// no CreateCheckoutSession expectation: a trial that is not winding down
	// counts as live and must short-circuit
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_trial", Status: domain.SubscriptionStatusTrialing},
	}, nil)

	redirect, err := b.Checkout(context.Background(), "shopA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.SubscriptionID != "sub_trial" {
		t.Fatalf("expected trialing subscription to short-circuit, got %+v", redirect)
	}
}

func TestBilling_Checkout_OwnerEmailFallback(t *testing.T) {
	st, pay, b := newTestBiller(t)

	profile := linkedProfile()
	profile.StripeCustomerID = ""
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(profile, nil)
	// no Subscriptions expectation: without a customer there is nothing to list
	pay.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payment.CheckoutParams) (*domain.CheckoutSession, error) {
			if params.CustomerID != "" {
				t.Fatalf("expected no customer binding, got %q", params.CustomerID)
			}
			if params.OwnerEmail != "owner@example.com" {
				t.Fatalf("expected owner email binding, got %q", params.OwnerEmail)
			}

			return &domain.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
		})

	if _, err := b.Checkout(context.Background(), "shopA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBilling_Checkout_IdentityMissing(t *testing.T) {
	st, _, b := newTestBiller(t)

	profile := linkedProfile()
	profile.StripeCustomerID = ""
	profile.OwnerEmail = ""
	// the payment mock has no expectations: the provider must never be called
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(profile, nil)

	_, err := b.Checkout(context.Background(), "shopA")
	if !errors.Is(err, serrors.ErrIdentityMissing) {
		t.Fatalf("expected identity missing, got %v", err)
	}
}

func TestBilling_Checkout_Misconfigured(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pay := mockpayment.NewMockClient(ctrl)
	b := billing.New(st, pay, billing.Options{})

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)

	_, err := b.Checkout(context.Background(), "shopA")
	if !errors.Is(err, serrors.ErrMisconfigured) {
		t.Fatalf("expected misconfigured, got %v", err)
	}
}

func TestBilling_Verify_LinksCustomerAndDerives(t *testing.T) {
	st, pay, b := newTestBiller(t)

	pay.EXPECT().CheckoutSession(gomock.Any(), "cs_1").Return(&domain.CheckoutSession{
		ID:         "cs_1",
		CustomerID: "cus_1",
		SiteKey:    "shopA",
	}, nil)
	st.EXPECT().LinkCustomer(gomock.Any(), "shopA", "cus_1").Return(nil)
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(linkedProfile(), nil)
	pay.EXPECT().Subscriptions(gomock.Any(), "cus_1").Return([]domain.SubscriptionRecord{
		{ID: "sub_1", Status: domain.SubscriptionStatusActive},
	}, nil)

	verification, err := b.Verify(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verification.SiteKey != "shopA" {
		t.Fatalf("expected siteKey shopA, got %q", verification.SiteKey)
	}
	if verification.Status != domain.EntitlementActive {
		t.Fatalf("expected active, got %s", verification.Status)
	}
}

func TestBilling_Verify_UnknownSession(t *testing.T) {
	_, pay, b := newTestBiller(t)

	pay.EXPECT().CheckoutSession(gomock.Any(), "cs_gone").
		Return(nil, serrors.With(serrors.ErrNotFound, "checkout session not found"))

	_, err := b.Verify(context.Background(), "cs_gone")
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBilling_Verify_EmptySessionID(t *testing.T) {
	_, _, b := newTestBiller(t)

	_, err := b.Verify(context.Background(), "")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}
