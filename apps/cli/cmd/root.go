package cmd

import (
	"io"
	"os"

	"github.com/abdul-hamid-achik/callsy/packages/core/config"
	"github.com/abdul-hamid-achik/callsy/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	requestFlag     string
	outputFlag      string
	bodyOutputFlag  string
	prettyFlag      bool
	interactiveFlag bool
	verboseFlag     int // 0=off, 1=-v, 2=-vv, 3=-vvv
	noColorFlag     bool
	configFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "callsy",
	Short: "Send an HTTP request described in JSON, save the response as JSON.",
	Long: `callsy reads a JSON file describing an HTTP request, performs that
request, and writes a JSON file describing the response.

Request file:
  {
    "url": "https://example.com/items",
    "method": "POST",
    "headers": {"content-type": "application/json", "content-length": null},
    "body": "{\"name\": \"item\"}"
  }

A null content-length is filled in with the byte length of the body. Any other
null header is an error.

Examples:
  callsy
  callsy -r calls/create.json -o out/create.json
  callsy -r get.json -b page.html --pretty -v`,
	Args:          usageArgs(cobra.NoArgs),
	RunE:          callCommand,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&requestFlag, "request", "r", config.DefaultRequestFile, "Request file to read")
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output (-v, -vv, -vvv for more detail)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a JSON or YAML config file")

	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", config.DefaultResponseFile, "Response file to write")
	rootCmd.Flags().StringVarP(&bodyOutputFlag, "body-output", "b", "", "Also write the raw response body to this file")
	rootCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the response JSON")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Ask before overwriting existing output files")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the exit code. Errors are
// printed to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	output.NewConsoleFormatter(
		output.WithWriter(stderr),
		output.WithNoColor(noColorFlag),
	).FormatError(err)
	return ExitCodeFor(err)
}

// loadConfig reads the --config file, if any, and lays the flags the user
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{}
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	if changed("request") {
		overrides.RequestFile = requestFlag
	}
	if changed("output") {
		overrides.ResponseFile = outputFlag
	}
	if changed("body-output") {
		overrides.BodyFile = bodyOutputFlag
	}
	if changed("pretty") {
		overrides.Pretty = config.BoolPtr(prettyFlag)
	}
	if changed("interactive") {
		overrides.Interactive = config.BoolPtr(interactiveFlag)
	}
	if changed("no-color") {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}
	if changed("verbose") {
		overrides.Verbose = verboseFlag
	}

	return fileConfig.Merge(overrides), nil
}
