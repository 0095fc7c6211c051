package cmd

import (
	"os"

	"github.com/mnit-rtmc/trafdat/pkg/exitcode"
	"github.com/mnit-rtmc/trafdat/pkg/logger"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags; falls back to "dev" otherwise.
var Version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trafdat",
	Short: "Traffic sensor and configuration archive server",
	Long: `trafdat serves read-only access to archived traffic sensor data and
IRIS metro_config snapshots over HTTP.

Examples:
   trafdat serve              # Start the archive server
   trafdat serve --config trafdat.yaml
   trafdat version            # Show version information`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializeLogger(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored pretty-printed logs")
	rootCmd.PersistentFlags().String("config", "", "Path to an explicit config file (overrides search path)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("trafdat {{.Version}}\n")
}

// initializeLogger sets up the process-wide logger from persistent flags.
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	noColor, _ := cmd.Flags().GetBool("no-color")

	config := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "trafdat",
	}

	if err := logger.Initialize(config); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(exitcode.ConfigError)
	}
}
