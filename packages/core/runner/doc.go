// Package runner executes a single callsy call.
//
// A run is strictly sequential:
//   - Confirm that existing output files may be replaced (interactive mode)
//   - Load and validate the request file
//   - Resolve null headers
//   - Send the request
//   - Write the response file, then the optional body file
//
// Any failure stops the run before later steps start, so no output file is
// touched unless a response was received.
package runner
