package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/callsy/packages/core/config"
	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
)

// Exit codes for callsy CLI
const (
	// ExitSuccess indicates the response was written
	ExitSuccess = 0

	// ExitFailure indicates an error without a more specific code
	ExitFailure = 1

	// ExitParseError indicates a malformed or incomplete request file
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitFileError indicates a file that could not be read or written
	ExitFileError = 5

	// ExitUnresolvedHeader indicates a null header other than content-length
	ExitUnresolvedHeader = 6

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// usageError marks errors caused by the command line itself.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCodeFor maps an error returned by a command to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		parseErr   *descriptor.ParseError
		fileErr    *descriptor.FileError
		headerErr  *descriptor.UnresolvedHeaderError
		networkErr *descriptor.NetworkError
		configErr  *config.LoadError
		usageErr   *usageError
	)
	switch {
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.As(err, &fileErr):
		return ExitFileError
	case errors.As(err, &headerErr):
		return ExitUnresolvedHeader
	case errors.As(err, &networkErr):
		return ExitNetworkError
	case errors.As(err, &configErr):
		return ExitConfigError
	case errors.As(err, &usageErr):
		return ExitUsageError
	}
	return ExitFailure
}
