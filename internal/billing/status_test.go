package billing_test

import (
	"cordely/internal/billing"
	"testing"

	"cordely/pkg/domain"
)

func record(status domain.SubscriptionStatus, cancelAtPeriodEnd bool) domain.SubscriptionRecord {
	return domain.SubscriptionRecord{
		ID:                "sub_1",
		Status:            status,
		CancelAtPeriodEnd: cancelAtPeriodEnd,
		CustomerID:        "cus_1",
	}
}

func TestDerive(t *testing.T) {
	linked := domain.SiteBillingProfile{SiteKey: "shopA", StripeCustomerID: "cus_1"}

	tests := []struct {
		name    string
		profile domain.SiteBillingProfile
		records []domain.SubscriptionRecord
		want    domain.EntitlementStatus
	}{
		{
			name:    "setup mode dominates everything",
			profile: domain.SiteBillingProfile{SiteKey: "shopA", SetupMode: true, IsFreePlan: true, StripeCustomerID: "cus_1"},
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusCanceled, false)},
			want:    domain.EntitlementSetupMode,
		},
		{
			name:    "free plan settles on none without looking at records",
			profile: domain.SiteBillingProfile{SiteKey: "shopA", IsFreePlan: true, StripeCustomerID: "cus_1"},
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusActive, false)},
			want:    domain.EntitlementNone,
		},
		{
			name:    "no customer linkage settles on none",
			profile: domain.SiteBillingProfile{SiteKey: "shopA"},
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusActive, false)},
			want:    domain.EntitlementNone,
		},
		{
			name:    "active subscription",
			profile: linked,
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusActive, false)},
			want:    domain.EntitlementActive,
		},
		{
			name:    "trialing counts as active",
			profile: linked,
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusTrialing, false)},
			want:    domain.EntitlementActive,
		},
		{
			name:    "live but scheduled to cancel",
			profile: linked,
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusActive, true)},
			want:    domain.EntitlementPendingCancel,
		},
		{
			name:    "active wins over pending cancel",
			profile: linked,
			records: []domain.SubscriptionRecord{
				record(domain.SubscriptionStatusActive, true),
				record(domain.SubscriptionStatusActive, false),
			},
			want: domain.EntitlementActive,
		},
		{
			name:    "pending cancel wins over canceled",
			profile: linked,
			records: []domain.SubscriptionRecord{
				record(domain.SubscriptionStatusCanceled, false),
				record(domain.SubscriptionStatusTrialing, true),
			},
			want: domain.EntitlementPendingCancel,
		},
		{
			name:    "only canceled history",
			profile: linked,
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusCanceled, false)},
			want:    domain.EntitlementCanceled,
		},
		{
			name:    "incomplete records grant nothing",
			profile: linked,
			records: []domain.SubscriptionRecord{record(domain.SubscriptionStatusIncomplete, false)},
			want:    domain.EntitlementNone,
		},
		{
			name:    "no records at all",
			profile: linked,
			records: nil,
			want:    domain.EntitlementNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.Derive(tt.profile, tt.records)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDerive_Pure(t *testing.T) {
	profile := domain.SiteBillingProfile{SiteKey: "shopA", StripeCustomerID: "cus_1"}
	records := []domain.SubscriptionRecord{record(domain.SubscriptionStatusActive, true)}

	first := billing.Derive(profile, records)
	second := billing.Derive(profile, records)
	if first != second {
		t.Fatalf("expected identical results for identical inputs, got %s then %s", first, second)
	}
}
