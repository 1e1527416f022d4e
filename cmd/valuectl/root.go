package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/valuecore/cmd/valuectl/logger"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	debug      bool
	configPath string
	cfg        = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "valuectl",
	Short: "Encode, decode, and convert typed value containers",
	Long: `valuectl reads and writes the typed value container format across
its binary, textual-envelope, JSON, and XML encodings. It converts between
any pair of them and can inspect a container's cells from the command
line.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(logger.Options{Enabled: debug, Level: slog.LevelDebug}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		}
		loaded, err := loadConfig(configPath)
		if err != nil {
			logger.Error("failed to load config", "path", configPath, "error", err)
			return err
		}
		cfg = loaded
		logger.Debug("valuectl invoked", "command", cmd.Name(), "args", args)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging to ~/.valuectl/logs/")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a valuectl config file (default: .valuectl.yaml in the working directory)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
