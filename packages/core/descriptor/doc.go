// Package descriptor defines the in-memory request and response descriptors
// used by callsy, and the steps that turn a request file into a request that
// is ready to send.
//
// It provides functionality for:
//   - Loading and validating request files against an embedded JSON Schema
//   - Keeping the difference between a null header and an empty one
//   - Resolving null headers (content-length is computed from the body)
//   - The error kinds shared by every stage of the pipeline
package descriptor
