package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

// flattenHeaders lower-cases header names and joins repeated values with
// ", ".
func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for k, values := range h {
		headers[strings.ToLower(k)] = strings.Join(values, ", ")
	}
	return headers
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// Descriptor converts the response into what gets written to the response
// file. The body is always present, possibly empty.
func (r *Response) Descriptor() *descriptor.Response {
	headers := make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}
	return &descriptor.Response{
		Status:  r.StatusCode,
		Headers: headers,
		Body:    descriptor.StringPtr(string(r.Body)),
	}
}
