// Package cmd holds the dayclaw CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/dayclaw/internal/config"
)

const version = "0.3.0"

var configPath string

// logLevel is swapped at runtime by the config watcher.
var logLevel = new(slog.LevelVar)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayclaw",
		Short: "dayclaw — personal daily companion over messaging channels",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.dayclaw/dayclaw.json5)")

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(doctorCmd())
	cmd.AddCommand(usersCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dayclaw version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dayclaw", version)
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func loadConfig() *config.Config {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	setLogLevel(cfg.LogLevel)
	return cfg
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}
}
