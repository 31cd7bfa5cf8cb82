package descriptor

import (
	"fmt"
	"strings"
)

// FileError reports a request, response or body file that could not be read
// or written.
type FileError struct {
	Op   string // "read", "write" or "overwrite"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("file error: cannot %s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("file error: cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError reports a request file that is not valid JSON or does not
// describe a request.
type ParseError struct {
	Path   string
	Field  string
	Line   int
	Column int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error")
	if e.Path != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " at line %d, column %d", e.Line, e.Column)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ": field %q", e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnresolvedHeaderError reports a null header that callsy cannot fill in.
type UnresolvedHeaderError struct {
	Header string
}

func (e *UnresolvedHeaderError) Error() string {
	return fmt.Sprintf("unresolved header %q: only %s may be null, supply a value directly", e.Header, ContentLengthHeader)
}

// NetworkError wraps a transport failure while sending the request or
// reading its response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
