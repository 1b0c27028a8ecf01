package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"custview/internal/customer"
	"custview/pkg/logging"
)

const subsystem = "Gateway"

// API is the set of remote operations the views and commands depend on.
type API interface {
	FetchCustomers(ctx context.Context, query string) ([]customer.Summary, error)
	FetchCustomerDetail(ctx context.Context, id string) (customer.Detail, error)
	PostStatusUpdate(ctx context.Context, id string, status customer.Status) (customer.Summary, error)
	PostEmail(ctx context.Context, req EmailRequest) (EmailAck, error)
	SyncNow(ctx context.Context) error
	CountMails(ctx context.Context) (int, error)
}

// Client talks to the customer records backend over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchCustomers lists customers whose name contains query. An empty query lists all.
func (c *Client) FetchCustomers(ctx context.Context, query string) ([]customer.Summary, error) {
	endpoint := c.endpoint("customers")
	endpoint.RawQuery = url.Values{"name": []string{query}}.Encode()

	var customers []customer.Summary
	if err := c.doJSON(ctx, "list customers", http.MethodGet, endpoint, nil, "", &customers); err != nil {
		return nil, err
	}
	logging.Debug(subsystem, "Fetched %d customers for query %q", len(customers), query)
	return customers, nil
}

// FetchCustomerDetail loads the full record of one customer.
func (c *Client) FetchCustomerDetail(ctx context.Context, id string) (customer.Detail, error) {
	if id == "" {
		return customer.Detail{}, ErrEmptyID
	}
	var detail customer.Detail
	if err := c.doJSON(ctx, "fetch customer", http.MethodGet, c.endpoint("customer", id), nil, "", &detail); err != nil {
		return customer.Detail{}, err
	}
	return detail, nil
}

type statusUpdateRequest struct {
	Status customer.Status `json:"status"`
}

// PostStatusUpdate changes the workflow status of a customer and returns the updated record.
func (c *Client) PostStatusUpdate(ctx context.Context, id string, status customer.Status) (customer.Summary, error) {
	if id == "" {
		return customer.Summary{}, ErrEmptyID
	}
	payload, err := json.Marshal(statusUpdateRequest{Status: status})
	if err != nil {
		return customer.Summary{}, fmt.Errorf("failed to marshal status update: %w", err)
	}

	var updated customer.Summary
	err = c.doJSON(ctx, "update status", http.MethodPost, c.endpoint("update_status", id),
		bytes.NewReader(payload), "application/json", &updated)
	if err != nil {
		return customer.Summary{}, err
	}
	logging.Info(subsystem, "Customer %s status set to %s", id, status.Label())
	return updated, nil
}

type syncResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SyncNow asks the backend to pull the latest mails immediately.
func (c *Client) SyncNow(ctx context.Context) error {
	var resp syncResponse
	if err := c.doJSON(ctx, "sync mails", http.MethodPost, c.endpoint("sync_now"), nil, "", &resp); err != nil {
		return err
	}
	if !resp.OK {
		if resp.Error != "" {
			return fmt.Errorf("%w: %s", ErrSyncFailed, resp.Error)
		}
		return ErrSyncFailed
	}
	return nil
}

type countResponse struct {
	Count int `json:"count"`
}

// CountMails returns how many mails the backend currently stores.
func (c *Client) CountMails(ctx context.Context) (int, error) {
	var resp countResponse
	if err := c.doJSON(ctx, "count mails", http.MethodGet, c.endpoint("count"), nil, "", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) endpoint(segments ...string) *url.URL {
	u := *c.baseURL
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.baseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	return &u
}

// doJSON sends a request and decodes a successful JSON response into out.
func (c *Client) doJSON(ctx context.Context, op, method string, endpoint *url.URL, body io.Reader, contentType string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := endpoint.String()
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &TransportError{
			Op:         op,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
