package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vipcxj/rangeview/internal/config"
	"github.com/vipcxj/rangeview/internal/logging"
	"go.uber.org/zap"
)

// NewRootCmd builds a fresh command tree, so repeated in-process runs do not
// share flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rangeview",
		Short:         "Lazy, copy-free windows over ordered lists",
		Long:          "rangeview slices lists of items with interval notation and rounds numbers to powers of two.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("env-file", ".env", "Load RANGEVIEW_* defaults from this dotenv file if it exists")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warning or error (default from RANGEVIEW_LOG_LEVEL)")

	rootCmd.AddCommand(newSliceCmd())
	rootCmd.AddCommand(newPow2Cmd())
	return rootCmd
}

// loadConfig merges the environment configuration with the persistent flags
// and builds the logger for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, *zap.SugaredLogger, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		if cfg.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
			return config.Config{}, nil, err
		}
	}
	log, err := logging.New(cmd.Name(), cfg.LogLevel, cfg.LogFile, cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		cmd.PrintErrln(fmt.Sprintf("%s %v", cmd.ErrPrefix(), err))
		return 1
	}
	return 0
}

// Main is the program entry point.
func Main() {
	os.Exit(Execute())
}
