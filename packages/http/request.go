package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
)

// NewRequest builds the outgoing *http.Request for a resolved descriptor.
func NewRequest(ctx context.Context, r *descriptor.Resolved) (*http.Request, error) {
	var body io.Reader
	if r.Body != "" {
		body = strings.NewReader(r.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range r.Headers {
		switch {
		case strings.EqualFold(k, "Host"):
			httpReq.Host = v
		case strings.EqualFold(k, "Content-Length"):
			// Sent from ContentLength, which always matches the body.
		default:
			httpReq.Header.Set(k, v)
		}
	}

	return httpReq, nil
}
