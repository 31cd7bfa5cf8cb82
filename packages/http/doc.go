// Package http sends resolved callsy requests.
//
// It wraps the standard library's http package with:
//   - Request building from a resolved descriptor
//   - Response capture into a response descriptor
//   - Typed network errors for transport failures
//
// Redirects and timeouts are left at the client library defaults.
package http
