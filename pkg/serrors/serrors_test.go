package serrors_test

import (
	"cordely/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrMisconfigured,
		serrors.ErrIdentityMissing,
		serrors.ErrProvider,
		serrors.ErrUnavailable,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrMisconfigured, serrors.ErrInternal,
		"Misconfigured must stay distinguishable from Internal")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("provider down")

	e1 := serrors.With(serrors.ErrNotFound, "site %q not found", "shopA")
	require.Equal(t, `site "shopA" not found`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrProvider, base, "listing subscriptions")
	require.Equal(t, "listing subscriptions: provider down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrIdentityMissing)
	require.Equal(t, "IDENTITY_MISSING", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrProvider, base, "creating session")

	require.ErrorIs(t, e, serrors.ErrProvider)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "sending push")

	var ce customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, "root cause", ce.msg)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid siteKey")

	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "invalid siteKey", e.Message())
	require.Equal(t, base, e.Cause())
}
