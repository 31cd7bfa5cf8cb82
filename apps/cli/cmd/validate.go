package cmd

import (
	"github.com/abdul-hamid-achik/callsy/packages/core/logger"
	"github.com/abdul-hamid-achik/callsy/packages/core/runner"
	"github.com/abdul-hamid-achik/callsy/packages/output"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a request file without sending it",
	Long: `Validate a request file and resolve its headers without sending anything.

Examples:
  callsy validate
  callsy validate -r calls/create.json -v`,
	Args: usageArgs(cobra.NoArgs),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.GetNoColor())
	resolved, err := runner.NewRunner(&runner.Config{Logger: &log}).Validate(cfg.RequestFile)
	if err != nil {
		return err
	}

	output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(cfg.Verbose > 0),
		output.WithNoColor(cfg.GetNoColor()),
	).FormatValid(cfg.RequestFile, resolved)
	return nil
}
