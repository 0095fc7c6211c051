package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mnit-rtmc/trafdat/internal/archive"
	"github.com/mnit-rtmc/trafdat/internal/assets"
	"github.com/mnit-rtmc/trafdat/internal/httpserver"
	"github.com/mnit-rtmc/trafdat/internal/metroconfig"
	"github.com/mnit-rtmc/trafdat/pkg/config"
	"github.com/mnit-rtmc/trafdat/pkg/exitcode"
	"github.com/mnit-rtmc/trafdat/pkg/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the archive server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error("failed to load configuration", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}

	if err := reinitializeLogger(cmd, cfg); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(exitcode.ConfigError)
	}

	renderer, err := assets.NewRenderer(Version)
	if err != nil {
		logger.Error("failed to load embedded assets", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}

	archiveStore := archive.NewStore(cfg.TrafficRoot)
	archiveStore.IgnorePatterns = cfg.IgnorePatterns
	configStore := metroconfig.NewStore(cfg.ConfigRoot)

	srv := httpserver.New(archiveStore, configStore, cfg.DefaultDistrict, renderer, "/trafdat")

	if err := srv.Start(cfg.BindAddress); err != nil {
		logger.Error("failed to bind listen address", logger.String("address", cfg.BindAddress), logger.Err(err))
		os.Exit(exitcode.BindError)
	}
	logger.Info("archive server listening", logger.String("address", cfg.BindAddress))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown timed out", logger.Err(err))
		os.Exit(exitcode.ShutdownTimeout)
	}

	logger.Info("shutdown complete")
	return nil
}

// reinitializeLogger re-derives logger configuration once the config
// file has been loaded, so log_level/log_json from the config file take
// effect even when the corresponding flags were left at their defaults.
func reinitializeLogger(cmd *cobra.Command, cfg *config.Config) error {
	logLevelStr := cfg.LogLevel
	jsonLogs := cfg.LogJSON
	noColor, _ := cmd.Flags().GetBool("no-color")

	if cmd.Flags().Changed("log-level") {
		logLevelStr, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("json-logs") {
		jsonLogs, _ = cmd.Flags().GetBool("json-logs")
	}

	return logger.Initialize(logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "trafdat",
	})
}
