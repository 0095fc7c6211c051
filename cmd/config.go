package cmd

import (
	"fmt"
	"os"

	"github.com/mnit-rtmc/trafdat/pkg/config"
	"github.com/mnit-rtmc/trafdat/pkg/exitcode"
	"github.com/mnit-rtmc/trafdat/pkg/logger"
	"github.com/spf13/cobra"
)

// configCmd prints the effective, validated configuration (defaults,
// config file, and environment merged) as YAML.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error("failed to load configuration", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	data, err := cfg.ToYAML()
	if err != nil {
		return fmt.Errorf("rendering configuration as YAML: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
