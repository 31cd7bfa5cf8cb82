package runner

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/abdul-hamid-achik/callsy/packages/http"
	"github.com/abdul-hamid-achik/callsy/packages/output"
	"github.com/rs/zerolog"
)

// ErrOverwriteDeclined is wrapped in the FileError returned when the user
// refuses to replace an existing output file.
var ErrOverwriteDeclined = errors.New("overwrite declined")

type Runner struct {
	client *http.Client
	writer *output.ResponseWriter
	config *Config
	logger zerolog.Logger
}

type Config struct {
	RequestFile  string
	ResponseFile string
	BodyFile     string
	Pretty       bool

	// Confirm is asked before an existing output file is replaced. A nil
	// Confirm replaces files without asking.
	Confirm func(path string) (bool, error)

	// Transport overrides the HTTP round tripper.
	Transport nethttp.RoundTripper
	Logger    *zerolog.Logger
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	clientOpts := []http.ClientOption{http.WithLogger(logger)}
	if cfg.Transport != nil {
		clientOpts = append(clientOpts, http.WithTransport(cfg.Transport))
	}

	return &Runner{
		client: http.NewClient(clientOpts...),
		writer: output.NewResponseWriter(output.WithPretty(cfg.Pretty)),
		config: cfg,
		logger: logger,
	}
}

type Result struct {
	Request      *descriptor.Resolved
	Response     *descriptor.Response
	Duration     time.Duration
	ResponseFile string
	BodyFile     string
}

// Run performs the call described by the configured request file.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.confirmOverwrite(r.config.ResponseFile); err != nil {
		return nil, err
	}
	if r.config.BodyFile != "" {
		if err := r.confirmOverwrite(r.config.BodyFile); err != nil {
			return nil, err
		}
	}

	resolved, err := r.Validate(r.config.RequestFile)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(ctx, resolved)
	if err != nil {
		return nil, err
	}
	r.logger.Info().
		Int("status", resp.StatusCode).
		Int64("durationMs", resp.DurationMs()).
		Msg("request completed")

	result := &Result{
		Request:      resolved,
		Response:     resp.Descriptor(),
		Duration:     resp.Duration,
		ResponseFile: r.config.ResponseFile,
		BodyFile:     r.config.BodyFile,
	}

	if err := r.writer.WriteResponse(r.config.ResponseFile, result.Response); err != nil {
		return nil, err
	}
	r.logger.Debug().Str("path", r.config.ResponseFile).Msg("wrote response")

	if r.config.BodyFile != "" {
		if err := r.writer.WriteBody(r.config.BodyFile, result.Response); err != nil {
			return nil, err
		}
		r.logger.Debug().Str("path", r.config.BodyFile).Msg("wrote body")
	}

	return result, nil
}

// Validate loads the request file at path and resolves its headers without
// sending anything.
func (r *Runner) Validate(path string) (*descriptor.Resolved, error) {
	req, err := descriptor.Load(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("path", path).
		Str("method", req.Method).
		Str("url", req.URL).
		Int("headers", len(req.Headers)).
		Msg("loaded request")

	resolved, err := descriptor.Resolve(req)
	if err != nil {
		return nil, err
	}
	if v, ok := resolved.Header(descriptor.ContentLengthHeader); ok {
		r.logger.Trace().Str("contentLength", v).Msg("resolved headers")
	}

	return resolved, nil
}

func (r *Runner) confirmOverwrite(path string) error {
	if r.config.Confirm == nil || !output.Exists(path) {
		return nil
	}
	ok, err := r.config.Confirm(path)
	if err != nil {
		return &descriptor.FileError{Op: "overwrite", Path: path, Err: err}
	}
	if !ok {
		return &descriptor.FileError{Op: "overwrite", Path: path, Err: ErrOverwriteDeclined}
	}
	return nil
}
