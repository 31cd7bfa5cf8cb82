package output

import (
	"bytes"
	"encoding/json"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
)

// ResponseWriter writes response descriptors to files.
type ResponseWriter struct {
	pretty bool
}

type JSONOption func(*ResponseWriter)

func NewResponseWriter(opts ...JSONOption) *ResponseWriter {
	w := &ResponseWriter{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WithPretty indents the JSON output.
func WithPretty(pretty bool) JSONOption {
	return func(w *ResponseWriter) {
		w.pretty = pretty
	}
}

// Encode serializes resp. HTML characters are left unescaped so the body
// reads the way the server sent it.
func (w *ResponseWriter) Encode(resp *descriptor.Response) ([]byte, error) {
	out := *resp
	if out.Headers == nil {
		out.Headers = map[string]string{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if w.pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteResponse replaces the file at path with the JSON form of resp.
func (w *ResponseWriter) WriteResponse(path string, resp *descriptor.Response) error {
	data, err := w.Encode(resp)
	if err != nil {
		return &descriptor.FileError{Op: "write", Path: path, Err: err}
	}
	return writeFileAtomic(path, data)
}

// WriteBody replaces the file at path with the raw response body.
func (w *ResponseWriter) WriteBody(path string, resp *descriptor.Response) error {
	return writeFileAtomic(path, []byte(resp.BodyString()))
}
