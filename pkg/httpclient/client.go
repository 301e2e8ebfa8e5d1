package httpclient

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

	"hotelhub/pkg/logger"
)

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Send(ctx context.Context, req *Request) (*Response, error)
	GetJSON(ctx context.Context, path string, result any, headers map[string]string) error
	PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error
	BaseURL() string
	Timeout() time.Duration
	RetryCount() int
}

// Request describes one outbound call. Path may contain {name} segments that are
// substituted from PathParams.
type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      map[string]string
	Headers    map[string]string
	Body       any
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError is returned by the JSON helpers for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status: %d, body: %s", e.StatusCode, e.Body)
}

// Interceptor observes every network call. Before may return a derived context
// which is then used for the call and handed to After.
type Interceptor interface {
	Before(ctx context.Context, req *http.Request) context.Context
	After(ctx context.Context, req *http.Request, resp *Response, err error)
}

// Client represents an HTTP client with configurable settings
type Client struct {
	client       *http.Client
	baseURL      string
	headers      map[string]string
	timeout      time.Duration
	retryCount   int
	logger       logger.LoggerInterface
	interceptors []Interceptor
}

// New creates a new HTTP client with the provided options
func New(opts ...Option) HTTPClient {
	client := &Client{
		client:  &http.Client{},
		headers: make(map[string]string),
		timeout: 30 * time.Second,
		logger:  logger.NoOpLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client.Timeout = client.timeout
	return client
}

// Send performs the request, retrying transport failures when configured
func (c *Client) Send(ctx context.Context, r *Request) (*Response, error) {
	target, err := c.buildURL(r)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if r.Body != nil {
		payload, err = json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			// exponential backoff with a little jitter
			wait := time.Duration(1<<uint(attempt-1))*time.Second + time.Duration(attempt*100)*time.Millisecond
			c.logger.InfoContext(ctx, "Retrying HTTP request", "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		resp, err := c.once(ctx, r, target, payload)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	c.logger.ErrorContext(ctx, "HTTP request failed", "method", r.Method, "url", target, "retries", c.retryCount, "error", lastErr)
	return nil, fmt.Errorf("request failed after %d retries: %w", c.retryCount, lastErr)
}

func (c *Client) once(ctx context.Context, r *Request, target string, payload []byte) (*Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	for _, in := range c.interceptors {
		ctx = in.Before(ctx, req)
	}
	req = req.WithContext(ctx)

	c.logger.DebugContext(ctx, "HTTP request", "method", r.Method, "url", target)

	resp, err := c.read(req)
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		c.interceptors[i].After(ctx, req, resp, err)
	}
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "HTTP response", "method", r.Method, "url", target, "statusCode", resp.StatusCode)
	return resp, nil
}

func (c *Client) read(req *http.Request) (*Response, error) {
	httpResp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

func (c *Client) buildURL(r *Request) (string, error) {
	path := r.Path
	for name, value := range r.PathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("unresolved path parameter in %q", path)
	}

	target := c.baseURL + path
	if len(r.Query) > 0 {
		q := url.Values{}
		for k, v := range r.Query {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}
	return target, nil
}

// GetJSON performs a GET request and unmarshals the response into result
func (c *Client) GetJSON(ctx context.Context, path string, result any, headers map[string]string) error {
	resp, err := c.Send(ctx, &Request{Method: http.MethodGet, Path: path, Headers: headers})
	if err != nil {
		return err
	}
	return c.decode(ctx, path, resp, result)
}

// PostJSON performs a POST request with JSON data and unmarshals the response into result
func (c *Client) PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error {
	resp, err := c.Send(ctx, &Request{Method: http.MethodPost, Path: path, Headers: headers, Body: data})
	if err != nil {
		return err
	}
	return c.decode(ctx, path, resp, result)
}

func (c *Client) decode(ctx context.Context, path string, resp *Response, result any) error {
	if !resp.IsSuccess() {
		c.logger.ErrorContext(ctx, "HTTP request failed", "path", path, "status", resp.StatusCode, "body", string(resp.Body))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, result); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal response", "path", path, "error", err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// BaseURL returns the base URL of the client
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the timeout setting of the client
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// RetryCount returns the retry count setting of the client
func (c *Client) RetryCount() int {
	return c.retryCount
}
