package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/callsy/packages/core/logger"
	"github.com/abdul-hamid-achik/callsy/packages/core/runner"
	"github.com/abdul-hamid-achik/callsy/packages/output"
	"github.com/spf13/cobra"
)

func callCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.GetNoColor())
	log.Debug().
		Str("request", cfg.RequestFile).
		Str("response", cfg.ResponseFile).
		Str("body", cfg.BodyFile).
		Msg("starting call")

	runCfg := &runner.Config{
		RequestFile:  cfg.RequestFile,
		ResponseFile: cfg.ResponseFile,
		BodyFile:     cfg.BodyFile,
		Pretty:       cfg.GetPretty(),
		Logger:       &log,
	}
	if cfg.GetInteractive() {
		runCfg.Confirm = runner.PromptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := runner.NewRunner(runCfg).Run(ctx)
	if err != nil {
		return err
	}

	output.NewConsoleFormatter(
		output.WithWriter(cmd.ErrOrStderr()),
		output.WithVerbose(cfg.Verbose > 0),
		output.WithNoColor(cfg.GetNoColor()),
	).FormatSummary(output.Summary{
		Method:       result.Request.Method,
		URL:          result.Request.URL,
		Status:       result.Response.Status,
		Duration:     result.Duration,
		ResponseFile: result.ResponseFile,
		BodyFile:     result.BodyFile,
	})

	return nil
}
