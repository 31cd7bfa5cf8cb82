package descriptor

import (
	"encoding/json"
	"strings"
)

// ContentLengthHeader is the only header whose value may be null in a
// request file.
const ContentLengthHeader = "content-length"

// HeaderValue is either a concrete string or an explicit null.
type HeaderValue struct {
	value string
	null  bool
}

// Present returns a header value holding s. The empty string is a valid value.
func Present(s string) HeaderValue {
	return HeaderValue{value: s}
}

// Null returns a header value that must be resolved before sending.
func Null() HeaderValue {
	return HeaderValue{null: true}
}

func (h HeaderValue) IsNull() bool {
	return h.null
}

// Value returns the string and whether it is present.
func (h HeaderValue) Value() (string, bool) {
	return h.value, !h.null
}

func (h HeaderValue) MarshalJSON() ([]byte, error) {
	if h.null {
		return []byte("null"), nil
	}
	return json.Marshal(h.value)
}

func (h *HeaderValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = Null()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*h = Present(s)
	return nil
}

// Request is the parsed content of a request file.
type Request struct {
	URL      string                 `json:"url"`
	Method   string                 `json:"method"`
	Headers  map[string]HeaderValue `json:"headers"`
	Body     *string                `json:"body,omitempty"`
	BodyPath *string                `json:"body_path,omitempty"`

	// Source is the file the request was loaded from, if any.
	Source string `json:"-"`
}

// BodyString returns the body, or the empty string when there is none.
func (r *Request) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// Resolved is a request with every header resolved to a concrete value.
type Resolved struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
}

// Header returns the value of the named header, matched case-insensitively.
func (r *Resolved) Header(key string) (string, bool) {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Response is what gets written to the response file.
type Response struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
	Body    *string           `json:"body,omitempty"`
}

// BodyString returns the body, or the empty string when there is none.
func (r *Response) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
