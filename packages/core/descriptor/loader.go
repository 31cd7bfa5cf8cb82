package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/http/httpguts"
)

// Load reads and parses the request file at path. A body_path in the file is
// read relative to the directory of path.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	req, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	req.Source = path

	if req.BodyPath != nil {
		bodyFile := *req.BodyPath
		if !filepath.IsAbs(bodyFile) {
			bodyFile = filepath.Join(filepath.Dir(path), bodyFile)
		}
		body, err := os.ReadFile(bodyFile)
		if err != nil {
			return nil, &FileError{Op: "read", Path: bodyFile, Err: err}
		}
		req.Body = StringPtr(string(body))
	}

	return req, nil
}

// Parse parses request file content. Unlike Load it does not read body_path;
// a request using one keeps a nil Body.
func Parse(data []byte) (*Request, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Request, error) {
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data, path)
	}
	if err := validateSchema(data, path); err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(data)
	req := &Request{
		URL:     root.Get("url").String(),
		Method:  strings.ToUpper(root.Get("method").String()),
		Headers: make(map[string]HeaderValue),
	}

	if err := validateMethod(req.Method, path); err != nil {
		return nil, err
	}
	if err := validateURL(req.URL, path); err != nil {
		return nil, err
	}

	if err := parseHeaders(root.Get("headers"), req, path); err != nil {
		return nil, err
	}

	if body := root.Get("body"); body.Type == gjson.String {
		req.Body = StringPtr(body.String())
	}
	if bodyPath := root.Get("body_path"); bodyPath.Type == gjson.String {
		if req.Body != nil {
			return nil, &ParseError{Path: path, Field: "body_path", Reason: "cannot provide both body and body_path"}
		}
		req.BodyPath = StringPtr(bodyPath.String())
	}

	return req, nil
}

// parseHeaders copies the headers object into req, keeping null apart from
// the empty string. A missing or null headers value means no headers.
func parseHeaders(headers gjson.Result, req *Request, path string) error {
	if !headers.IsObject() {
		return nil
	}

	seen := make(map[string]string)
	var headerErr error
	headers.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if prev, ok := seen[strings.ToLower(name)]; ok {
			headerErr = &ParseError{Path: path, Field: "headers." + name, Reason: fmt.Sprintf("duplicate of header %q", prev)}
			return false
		}
		seen[strings.ToLower(name)] = name

		if !httpguts.ValidHeaderFieldName(name) {
			headerErr = &ParseError{Path: path, Field: "headers." + name, Reason: "invalid header name"}
			return false
		}
		if value.Type == gjson.Null {
			req.Headers[name] = Null()
			return true
		}
		if !httpguts.ValidHeaderFieldValue(value.String()) {
			headerErr = &ParseError{Path: path, Field: "headers." + name, Reason: "invalid header value"}
			return false
		}
		req.Headers[name] = Present(value.String())
		return true
	})
	return headerErr
}

// syntaxError locates the first JSON syntax error in data.
func syntaxError(data []byte, path string) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		return &ParseError{Path: path, Reason: "invalid JSON"}
	}

	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return &ParseError{Path: path, Reason: err.Error(), Err: err}
	}
	line, col := position(data, se.Offset)
	return &ParseError{Path: path, Line: line, Column: col, Reason: se.Error(), Err: err}
}

// position converts the offset of a json.SyntaxError, which points just past
// the offending byte, into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	offset--
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := len(before) - bytes.LastIndexByte(before, '\n')
	return line, col
}

func validateMethod(method, path string) error {
	// Methods share the token grammar of header names.
	if !httpguts.ValidHeaderFieldName(method) {
		return &ParseError{Path: path, Field: "method", Reason: fmt.Sprintf("invalid HTTP method %q", method)}
	}
	return nil
}

func validateURL(raw, path string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &ParseError{Path: path, Field: "url", Reason: err.Error(), Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ParseError{Path: path, Field: "url", Reason: fmt.Sprintf("unsupported scheme in %q, expected http or https", raw)}
	}
	if u.Host == "" {
		return &ParseError{Path: path, Field: "url", Reason: fmt.Sprintf("missing host in %q", raw)}
	}
	return nil
}
