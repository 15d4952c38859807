// Package gateway is the HTTP client for upstream FortisApp APIs. The tenant id is passed on
// every call and sent as the x-owner-id header; the client holds no per-tenant state.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// HeaderOwnerID carries the tenant on every upstream request.
const HeaderOwnerID = "x-owner-id"

const maxBody = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do sends a JSON request and decodes the JSON response into out (skipped when out is nil).
// Non-2xx answers become *domain.UpstreamError; undecodable bodies wrap domain.ErrUpstream.
func (c *Client) Do(ctx context.Context, ownerID, method, path string, body, out any) error {
	if ownerID == "" {
		return domain.Invalid("x-owner-id required")
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set(HeaderOwnerID, ownerID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w: %v", method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("gateway: read body: %w: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(raw, resp.Status)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: malformed response from %s: %w: %v", path, domain.ErrUpstream, err)
	}
	return nil
}

// upstreamMessage picks the error text of a FortisApp error body, else the raw body.
func upstreamMessage(raw []byte, status string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		if len(text) > 200 {
			text = text[:200]
		}
		return text
	}
	return status
}

// Health calls GET /health upstream.
func (c *Client) Health(ctx context.Context, ownerID string) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.Do(ctx, ownerID, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, &domain.UpstreamError{Status: http.StatusServiceUnavailable, Message: "upstream reports not ok"}
	}
	return &out, nil
}

// IsUpstream reports whether err came from the upstream side.
func IsUpstream(err error) bool {
	return errors.Is(err, domain.ErrUpstream)
}
