package billing

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/logger"

	"go.uber.org/zap"
)

type profileResult struct {
	profile *domain.SiteBillingProfile
	err     error
}

type statusResult struct {
	status domain.EntitlementStatus
	err    error
}

// Access joins the site's profile flags with its derived entitlement into a
// single render decision. The profile and the status are fetched
// concurrently; when the context is cancelled both in-flight results are
// discarded and the context error is returned.
//
// A non-empty sessionID routes the status side through session verification,
// which also persists the customer linkage the session established.
func (b billing) Access(ctx context.Context, siteKey string, sessionID string) (*domain.AccessDecision, error) {
	profileCh := make(chan profileResult, 1)
	statusCh := make(chan statusResult, 1)

	go func() {
		profile, err := b.profileByKey(ctx, siteKey)
		profileCh <- profileResult{profile: profile, err: err}
	}()

	go func() {
		if sessionID != "" {
			verification, err := b.Verify(ctx, sessionID)
			if err != nil {
				statusCh <- statusResult{err: err}

				return
			}
			statusCh <- statusResult{status: verification.Status}

			return
		}

		status, err := b.Status(ctx, siteKey)
		statusCh <- statusResult{status: status, err: err}
	}()

	var profileRes *profileResult
	var statusRes *statusResult
	for profileRes == nil || statusRes == nil {
		select {
		case res := <-profileCh:
			profileRes = &res
		case res := <-statusCh:
			statusRes = &res
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// without a profile there is no site to decide for
	if profileRes.err != nil {
		return nil, profileRes.err
	}
	profile := profileRes.profile

	// the status side fails closed: any error settles on none
	status := domain.EntitlementNone
	if statusRes.err != nil {
		logger.Warn(ctx, "Could not derive entitlement status, failing closed",
			zap.String("siteKey", siteKey),
			zap.Error(statusRes.err))
	} else {
		status = statusRes.status
	}

	return decide(*profile, status), nil
}

// decide settles the gate: free-plan sites are always open, sites without a
// customer linkage are always blocked, everything else follows the derived
// status.
func decide(profile domain.SiteBillingProfile, status domain.EntitlementStatus) *domain.AccessDecision {
	var state domain.AccessState
	var open bool

	switch {
	case profile.IsFreePlan:
		state, open = domain.AccessStateFree, true
	case !profile.HasCustomer():
		state, open = domain.AccessStateNone, false
	default:
		switch status {
		case domain.EntitlementSetupMode:
			state, open = domain.AccessStateSetup, true
		case domain.EntitlementActive:
			state, open = domain.AccessStateActive, true
		case domain.EntitlementPendingCancel:
			state, open = domain.AccessStatePendingCancel, true
		case domain.EntitlementCanceled:
			state, open = domain.AccessStateCanceled, false
		default:
			state, open = domain.AccessStateNone, false
		}
	}

	return &domain.AccessDecision{
		State:   state,
		Open:    open,
		Overlay: !open,
	}
}
