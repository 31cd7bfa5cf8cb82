// Package cmd implements the callsy CLI commands using Cobra.
//
// The root command performs the call described by a request file and writes
// the response file. Other commands:
//   - validate: Load and resolve a request file without sending it
//   - init: Create an example request file
//   - completion: Generate shell completion scripts
//   - version: Show callsy version information
package cmd
