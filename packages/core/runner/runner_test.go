package runner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okTransport(t *testing.T, calls *int) http.RoundTripper {
	return roundTripFunc(func(r *http.Request) (*http.Response, error) {
		*calls++
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
			Body:       io.NopCloser(strings.NewReader("ok")),
			Request:    r,
		}, nil
	})
}

func writeRequest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewRunner(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		r := NewRunner(nil)
		assert.NotNil(t, r)
		assert.NotNil(t, r.client)
		assert.NotNil(t, r.writer)
	})

	t.Run("with custom config", func(t *testing.T) {
		r := NewRunner(&Config{RequestFile: "in.json", Pretty: true})
		assert.Equal(t, "in.json", r.config.RequestFile)
		assert.True(t, r.config.Pretty)
	})
}

func TestRunner_Run_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"GET","headers":{},"body":null}`)
	respFile := filepath.Join(dir, "response.json")

	calls := 0
	r := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		Transport:    okTransport(t, &calls),
	})

	result, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 200, result.Response.Status)

	data, err := os.ReadFile(respFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":200,"headers":{"content-type":"text/plain"},"body":"ok"}`, string(data))
}

func TestRunner_Run_AgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, int64(11), r.ContentLength)
		assert.Equal(t, "hello world", string(body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"`+server.URL+`/items","method":"post","headers":{"Content-Length":null},"body":"hello world"}`)
	respFile := filepath.Join(dir, "response.json")
	bodyFile := filepath.Join(dir, "body.json")

	result, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		BodyFile:     bodyFile,
	}).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "11", result.Request.Headers["Content-Length"])
	assert.Equal(t, bodyFile, result.BodyFile)

	var written map[string]any
	data, err := os.ReadFile(respFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, float64(201), written["status"])
	assert.Equal(t, `{"id":1}`, written["body"])

	body, err := os.ReadFile(bodyFile)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(body))
}

func TestRunner_Run_UnresolvedHeaderSendsNothing(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"GET","headers":{"Authorization":null}}`)
	respFile := filepath.Join(dir, "response.json")

	calls := 0
	_, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		Transport:    okTransport(t, &calls),
	}).Run(context.Background())

	var ue *descriptor.UnresolvedHeaderError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Authorization", ue.Header)
	assert.Equal(t, 0, calls)
	_, statErr := os.Stat(respFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_Run_ParseErrorSendsNothing(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"method":"GET","headers":{}}`)

	calls := 0
	_, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: filepath.Join(dir, "response.json"),
		Transport:    okTransport(t, &calls),
	}).Run(context.Background())

	var pe *descriptor.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "url", pe.Field)
	assert.Equal(t, 0, calls)
}

func TestRunner_Run_NetworkErrorKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"GET"}`)
	respFile := filepath.Join(dir, "response.json")
	require.NoError(t, os.WriteFile(respFile, []byte("previous"), 0644))

	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		Transport:    transport,
	}).Run(context.Background())

	var ne *descriptor.NetworkError
	require.True(t, errors.As(err, &ne))
	data, readErr := os.ReadFile(respFile)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))
}

func TestRunner_Run_MissingRequestFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRunner(&Config{
		RequestFile:  filepath.Join(dir, "request.json"),
		ResponseFile: filepath.Join(dir, "response.json"),
	}).Run(context.Background())

	var fe *descriptor.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "read", fe.Op)
}

func TestRunner_Run_OverwriteDeclined(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"GET"}`)
	respFile := filepath.Join(dir, "response.json")
	require.NoError(t, os.WriteFile(respFile, []byte("keep me"), 0644))

	calls := 0
	var asked []string
	_, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		Transport:    okTransport(t, &calls),
		Confirm: func(path string) (bool, error) {
			asked = append(asked, path)
			return false, nil
		},
	}).Run(context.Background())

	var fe *descriptor.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "overwrite", fe.Op)
	assert.True(t, errors.Is(err, ErrOverwriteDeclined))
	assert.Equal(t, []string{respFile}, asked)
	assert.Equal(t, 0, calls)
}

func TestRunner_Run_OverwriteConfirmed(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"GET"}`)
	respFile := filepath.Join(dir, "response.json")
	require.NoError(t, os.WriteFile(respFile, []byte("old"), 0644))

	calls := 0
	_, err := NewRunner(&Config{
		RequestFile:  reqFile,
		ResponseFile: respFile,
		Transport:    okTransport(t, &calls),
		Confirm:      func(string) (bool, error) { return true, nil },
	}).Run(context.Background())

	require.NoError(t, err)
	data, err := os.ReadFile(respFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":200`)
}

func TestRunner_Validate(t *testing.T) {
	dir := t.TempDir()
	reqFile := writeRequest(t, dir, `{"url":"https://example.com","method":"delete","headers":{"content-length":null,"X-Empty":""}}`)

	resolved, err := NewRunner(nil).Validate(reqFile)

	require.NoError(t, err)
	assert.Equal(t, "DELETE", resolved.Method)
	assert.Equal(t, map[string]string{"content-length": "0", "X-Empty": ""}, resolved.Headers)
}
