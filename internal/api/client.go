package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dcastillo/studia/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Studia/1.0"
)

// Client is the shared HTTP client all entity services are built on.
// It is constructed once and injected; the auth transport registered on it
// attaches the session token to every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an API client for the given base URL. The token store
// is consulted on every request; a cleared store means requests go out
// without a bearer credential.
func NewClient(baseURL string, tokens *TokenStore, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: &authTransport{tokens: tokens, base: http.DefaultTransport},
		},
		logger: logger,
	}
}

// authTransport injects the bearer token into outgoing requests. It never
// retries or refreshes; a 401 passes through unchanged for the caller to
// handle.
type authTransport struct {
	tokens *TokenStore
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

// do performs an authenticated request and maps HTTP failures onto the
// domain's sentinel errors. A transport failure with no response collapses
// to ErrServerOffline.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return respBody, nil
	case http.StatusBadRequest:
		c.logger.Warn("api rejected request", "status", resp.StatusCode, "body", string(respBody))
		return nil, domain.ErrBadRequest
	case http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case http.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		c.logger.Error("api request error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

// page is the wire shape of every list endpoint: a page of records plus
// the total remote count for pagination.
type page[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// listPage fetches one page of records from a list endpoint.
// Returns (items, totalCount, error).
func listPage[T any](ctx context.Context, c *Client, path string, pageNum int) ([]T, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageNum))

	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, 0, err
	}

	var p page[T]
	if err := json.Unmarshal(body, &p); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, 0, fmt.Errorf("failed to parse response: %w", err)
	}
	return p.Items, p.Count, nil
}

// decodeOne parses the single-record response of create/update endpoints.
func decodeOne[T any](c *Client, body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &v, nil
}
