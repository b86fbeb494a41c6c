package billing

import "cordely/pkg/domain"

// live reports whether a subscription is currently running (paying or in
// trial). Records in any other lifecycle state never grant access.
func live(record domain.SubscriptionRecord) bool {
	return record.Status == domain.SubscriptionStatusActive ||
		record.Status == domain.SubscriptionStatusTrialing
}

// Derive computes a site's entitlement from its billing profile and the
// provider's subscription records. It is a pure function: same inputs, same
// status, no I/O.
//
// Precedence, highest first:
//  1. setup mode exempts the site from billing entirely
//  2. free-plan sites and sites without a customer linkage have nothing to
//     derive from, so they settle on none
//  3. a live subscription that is not scheduled to cancel wins over one that is
//  4. a live subscription scheduled to cancel still grants access until the
//     period ends
//  5. only-canceled history is reported as canceled, everything else as none
func Derive(profile domain.SiteBillingProfile, records []domain.SubscriptionRecord) domain.EntitlementStatus {
	if profile.SetupMode {
		return domain.EntitlementSetupMode
	}
	if profile.IsFreePlan || !profile.HasCustomer() {
		return domain.EntitlementNone
	}

	var pending, canceled bool
	for _, record := range records {
		switch {
		case live(record) && !record.CancelAtPeriodEnd:
			return domain.EntitlementActive
		case live(record):
			pending = true
		case record.Status == domain.SubscriptionStatusCanceled:
			canceled = true
		}
	}

	if pending {
		return domain.EntitlementPendingCancel
	}
	if canceled {
		return domain.EntitlementCanceled
	}

	return domain.EntitlementNone
}
