package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/callsy/packages/core/config"
	"github.com/abdul-hamid-achik/callsy/packages/core/descriptor"
	"github.com/spf13/cobra"
)

var (
	forceInit      bool
	initDirFlag    string
	initConfigFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example request file",
	Long: `Create an example request file in the current directory.

This creates:
  - request.json   - Example request, ready to send with 'callsy'
  - callsy.yaml    - Configuration file (with --with-config)

Examples:
  callsy init
  callsy init --with-config
  callsy init --force`,
	Args: usageArgs(cobra.NoArgs),
	RunE: initCommand,
}

const exampleRequest = `{
  "url": "https://httpbin.org/post",
  "method": "POST",
  "headers": {
    "content-type": "application/json",
    "accept": "application/json",
    "content-length": null
  },
  "body": "{\"name\": \"callsy\"}"
}
`

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
	initCmd.Flags().StringVar(&initDirFlag, "dir", ".", "Directory to create the files in")
	initCmd.Flags().BoolVar(&initConfigFlag, "with-config", false, "Also create a callsy.yaml config file")
}

func initCommand(cmd *cobra.Command, args []string) error {
	requestFile := filepath.Join(initDirFlag, config.DefaultRequestFile)
	configFile := filepath.Join(initDirFlag, "callsy.yaml")

	targets := []string{requestFile}
	if initConfigFlag {
		targets = append(targets, configFile)
	}
	if !forceInit {
		for _, f := range targets {
			if _, err := os.Stat(f); err == nil {
				return &descriptor.FileError{Op: "overwrite", Path: f, Err: fmt.Errorf("file already exists (use --force to overwrite)")}
			}
		}
	}

	// Keep the example honest: it must load and resolve.
	req, err := descriptor.Parse([]byte(exampleRequest))
	if err != nil {
		return err
	}
	if _, err := descriptor.Resolve(req); err != nil {
		return err
	}

	if err := os.WriteFile(requestFile, []byte(exampleRequest), 0644); err != nil {
		return &descriptor.FileError{Op: "write", Path: requestFile, Err: err}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", requestFile)

	if initConfigFlag {
		cfg := config.DefaultConfig()
		cfg.Pretty = config.BoolPtr(true)
		if err := cfg.SaveConfig(configFile); err != nil {
			return &descriptor.FileError{Op: "write", Path: configFile, Err: err}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nRun 'callsy' to send %s and write %s.\n", config.DefaultRequestFile, config.DefaultResponseFile)
	return nil
}
