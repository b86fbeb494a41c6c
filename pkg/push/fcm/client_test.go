package fcm_test

import (
	"context"
	"cordely/pkg/push"
	"cordely/pkg/push/fcm"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"cordely/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *fcm.Client {
	return fcm.New(&http.Client{Transport: fn}, "https://fcm.googleapis.com/fcm/send", "test-key")
}

func TestClient_Send_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "fcm.googleapis.com", r.URL.Host)
		require.Equal(t, "/fcm/send", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "key=test-key", r.Header.Get("Authorization"))

		var body struct {
			To           string `json:"to"`
			Notification struct {
				Title       string `json:"title"`
				Body        string `json:"body"`
				ClickAction string `json:"click_action"`
			} `json:"notification"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "device-token", body.To)
		require.Equal(t, "Order ready", body.Notification.Title)
		require.Equal(t, "https://shop.example/?siteKey=shopA&done=7", body.Notification.ClickAction)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":1,"failure":0,"results":[{}]}`)),
		}, nil
	})

	err := c.Send(context.Background(), "device-token", push.Notification{
		Title: "Order ready",
		Body:  "Order no. 7 is ready for pickup",
		Link:  "https://shop.example/?siteKey=shopA&done=7",
	})
	require.NoError(t, err)
}

func TestClient_Send_staleToken(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":0,"failure":1,"results":[{"error":"NotRegistered"}]}`)),
		}, nil
	})

	err := c.Send(context.Background(), "dead-token", push.Notification{Title: "x"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound, "stale tokens should surface as not found: %v", err)
}

func TestClient_Send_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader("bad key")),
		}, nil
	})

	err := c.Send(context.Background(), "device-token", push.Notification{Title: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad key")
}

func TestClient_Send_networkError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	err := c.Send(context.Background(), "device-token", push.Notification{Title: "x"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
