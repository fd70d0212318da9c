// Package waha is a minimal client for a WAHA-style WhatsApp HTTP
// gateway (sendText endpoint).
package waha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client posts rendered messages to the gateway. It implements the
// reminder delivery sink; there is no retry.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
}

// New creates a client for the given sendText endpoint. apiKey may be
// empty for unauthenticated gateways.
func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: defaultTimeout},
	}
}

type sendTextRequest struct {
	ChatID string `json:"chatId"`
	Text   string `json:"text"`
}

// Send delivers one message to a 10-digit mobile number. The gateway
// addresses WhatsApp accounts as "<mobile>@c.us".
func (c *Client) Send(ctx context.Context, mobile, message string) error {
	payload, err := json.Marshal(sendTextRequest{
		ChatID: mobile + "@c.us",
		Text:   message,
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
