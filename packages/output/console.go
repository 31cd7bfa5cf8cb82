package output

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/fatih/color"
)

// Summary describes one completed call for console output.
type Summary struct {
	Method       string
	URL          string
	Status       int
	Duration     time.Duration
	ResponseFile string
	BodyFile     string
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func statusColor(status int) func(a ...interface{}) string {
	switch {
	case status >= 500:
		return color.New(color.FgRed).SprintFunc()
	case status >= 400:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}

// FormatSummary prints the status line of a completed call. Nothing is
// printed unless the formatter is verbose.
func (f *ConsoleFormatter) FormatSummary(s Summary) {
	if !f.verbose {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	status := fmt.Sprintf("%d %s", s.Status, http.StatusText(s.Status))
	fmt.Fprintf(f.writer, "%s %s %s %s\n", bold(s.Method), s.URL, statusColor(s.Status)(status), cyan(fmt.Sprintf("(%dms)", s.Duration.Milliseconds())))
	fmt.Fprintf(f.writer, "  response: %s\n", s.ResponseFile)
	if s.BodyFile != "" {
		fmt.Fprintf(f.writer, "  body:     %s\n", s.BodyFile)
	}
}

// FormatValid prints the outcome of a successful validation.
func (f *ConsoleFormatter) FormatValid(path string, req *descriptor.Resolved) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s: %s %s\n", green("Valid:"), path, req.Method, req.URL)
	if !f.verbose {
		return
	}

	names := make([]string, 0, len(req.Headers))
	for name := range req.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(f.writer, "  %s: %s\n", name, req.Headers[name])
	}
	if req.Body != "" {
		fmt.Fprintf(f.writer, "  body: %d bytes\n", len(req.Body))
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
