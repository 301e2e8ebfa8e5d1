package httpclient

import (
	"net/http"
	"strings"
	"time"

	"hotelhub/pkg/logger"
)

// Option is a function that configures a Client
type Option func(*Client)

// WithBaseURL sets the base URL for the client
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout for requests
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeaders sets default headers for all requests
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithRetryCount sets the number of retries for transport failures
func WithRetryCount(retryCount int) Option {
	return func(c *Client) {
		c.retryCount = retryCount
	}
}

// WithHTTPClient allows using a custom http.Client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used for request/response logging
func WithLogger(l logger.LoggerInterface) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInterceptors appends interceptors invoked around every network call
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}
