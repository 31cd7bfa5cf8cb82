// Package output writes callsy results.
//
// Supported outputs:
//   - Response file: the response descriptor as JSON (compact or indented)
//   - Body file: the raw response body
//   - Console: colored one-line summaries and errors for the terminal
//
// Files are written through a temporary file and renamed into place, so a
// failed write never leaves a partial file behind.
package output
