package sites_test

import (
	"context"
	"cordely/internal/sites"
	"errors"
	"testing"

	mockstorage "cordely/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
)

func newTestSites(t *testing.T) (*mockstorage.MockStorage, sites.Sites) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, sites.New(st)
}

func TestSites_Site(t *testing.T) {
	st, s := newTestSites(t)

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").
		Return(&domain.SiteBillingProfile{SiteKey: "shopA", SiteName: "Shop A"}, nil)
	site, err := s.Site(context.Background(), "shopA")
	if err != nil || site.SiteName != "Shop A" {
		t.Fatalf("unexpected: site=%+v err=%v", site, err)
	}

	st.EXPECT().SiteByKey(gomock.Any(), "nope").Return(nil, nil)
	if _, err := s.Site(context.Background(), "nope"); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := s.Site(context.Background(), ""); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestSites_Create(t *testing.T) {
	st, s := newTestSites(t)

	draft := domain.SiteBillingProfile{SiteKey: "shopA", SiteName: "Shop A"}

	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(nil, nil)
	st.EXPECT().StoreSite(gomock.Any(), draft).Return(&draft, nil)
	site, err := s.Create(context.Background(), draft)
	if err != nil || site.SiteKey != "shopA" {
		t.Fatalf("unexpected: site=%+v err=%v", site, err)
	}

	// duplicate key
	st.EXPECT().SiteByKey(gomock.Any(), "shopA").Return(&draft, nil)
	if _, err := s.Create(context.Background(), draft); !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if _, err := s.Create(context.Background(), domain.SiteBillingProfile{SiteKey: "shopA"}); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request for missing name, got %v", err)
	}
}

func TestSites_UpdateBranding(t *testing.T) {
	st, s := newTestSites(t)

	name := "New Name"

	st.EXPECT().UpdateSiteBranding(gomock.Any(), "shopA", gomock.Any()).
		Return(&domain.SiteBillingProfile{SiteKey: "shopA", SiteName: name}, nil)
	site, err := s.UpdateBranding(context.Background(), "shopA", storage.SiteBrandingUpdates{SiteName: &name})
	if err != nil || site.SiteName != name {
		t.Fatalf("unexpected: site=%+v err=%v", site, err)
	}

	st.EXPECT().UpdateSiteBranding(gomock.Any(), "nope", gomock.Any()).Return(nil, nil)
	if _, err := s.UpdateBranding(context.Background(), "nope", storage.SiteBrandingUpdates{SiteName: &name}); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	empty := ""
	if _, err := s.UpdateBranding(context.Background(), "shopA", storage.SiteBrandingUpdates{SiteName: &empty}); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}
