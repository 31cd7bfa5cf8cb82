package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/rs/zerolog"
)

type Client struct {
	httpClient *http.Client
	transport  http.RoundTripper
	logger     zerolog.Logger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Transport: c.transport,
	}

	return c
}

// WithTransport replaces the round tripper, http.DefaultTransport otherwise.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = rt
	}
}

func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// Do sends the request and reads the whole response body. Any failure to
// reach the server or read its answer is a *descriptor.NetworkError.
func (c *Client) Do(ctx context.Context, req *descriptor.Resolved) (*Response, error) {
	httpReq, err := NewRequest(ctx, req)
	if err != nil {
		return nil, &descriptor.NetworkError{Method: req.Method, URL: req.URL, Err: err}
	}

	c.logger.Debug().
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String()).
		Int64("contentLength", httpReq.ContentLength).
		Msg("sending request")

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &descriptor.NetworkError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, &descriptor.NetworkError{Method: req.Method, URL: req.URL, Err: err}
	}

	c.logger.Debug().
		Int("status", httpResp.StatusCode).
		Int("bytes", len(respBody)).
		Dur("duration", duration).
		Msg("received response")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       respBody,
		Duration:   duration,
	}, nil
}
