package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/stretchr/testify/assert"
)

func TestConsoleFormatter_FormatSummary(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithVerbose(true), WithNoColor(true))

	f.FormatSummary(Summary{
		Method:       "GET",
		URL:          "https://example.com",
		Status:       404,
		Duration:     12 * time.Millisecond,
		ResponseFile: "response.json",
		BodyFile:     "body.html",
	})

	out := buf.String()
	assert.Contains(t, out, "GET https://example.com 404 Not Found (12ms)")
	assert.Contains(t, out, "response: response.json")
	assert.Contains(t, out, "body:     body.html")
}

func TestConsoleFormatter_QuietSummary(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatSummary(Summary{Method: "GET", URL: "https://example.com", Status: 200})

	assert.Empty(t, buf.String())
}

func TestConsoleFormatter_FormatValid(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithVerbose(true), WithNoColor(true))

	f.FormatValid("request.json", &descriptor.Resolved{
		Method:  "POST",
		URL:     "https://example.com",
		Headers: map[string]string{"content-length": "2", "Accept": "*/*"},
		Body:    "hi",
	})

	assert.Equal(t, "Valid: request.json: POST https://example.com\n  Accept: */*\n  content-length: 2\n  body: 2 bytes\n", buf.String())
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatError(errors.New("boom"))

	assert.Equal(t, "Error: boom\n", buf.String())
}
