// Package fcm provides a push.Notifier implementation backed by the Firebase
// Cloud Messaging HTTP API.
package fcm

import (
	"context"
	"cordely/pkg/push"
	"cordely/pkg/serrors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the FCM HTTP endpoint and fulfills the push.Notifier
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to FCM
	endpoint   string       // endpoint is the FCM send URL
	serverKey  string       // serverKey authorizes requests against the project
}

// Send delivers the notification to a single device token. Unknown or expired
// tokens are reported as ErrNotFound so callers can drop them without retrying.
func (c *Client) Send(ctx context.Context, token string, notification push.Notification) error {
	type notificationPayload struct {
		Title       string `json:"title"`
		Body        string `json:"body"`
		ClickAction string `json:"click_action,omitempty"`
	}
	type sendReq struct {
		To           string              `json:"to"`
		Notification notificationPayload `json:"notification"`
	}
	bodyBytes, err := json.Marshal(sendReq{
		To: token,
		Notification: notificationPayload{
			Title:       notification.Title,
			Body:        notification.Body,
			ClickAction: notification.Link,
		},
	})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.endpoint,
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return serrors.With(serrors.ErrNotFound, "unknown device token")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send failed: %s", strings.TrimSpace(string(b)))
	}

	// the endpoint reports per-token failures in a 200 response
	var sendResp struct {
		Failure int `json:"failure"`
		Results []struct {
			Error string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	if sendResp.Failure > 0 {
		reason := "unknown"
		if len(sendResp.Results) > 0 && sendResp.Results[0].Error != "" {
			reason = sendResp.Results[0].Error
		}
		if reason == "NotRegistered" || reason == "InvalidRegistration" {
			return serrors.With(serrors.ErrNotFound, "stale device token: %s", reason)
		}

		return fmt.Errorf("send rejected: %s", reason)
	}

	return nil
}

// Ensure Client conforms to the push.Notifier interface at compile time.
var _ push.Notifier = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, endpoint and
// server key to interact with FCM.
func New(httpClient *http.Client, endpoint string, serverKey string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		serverKey:  serverKey,
	}
}
