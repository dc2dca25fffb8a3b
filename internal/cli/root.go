// Package cli provides the csvdash command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/csvdash/internal/config"
	"github.com/JonMunkholm/csvdash/internal/core"
	"github.com/JonMunkholm/csvdash/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

type configKey struct{}

// NewRootCmd builds the csvdash command tree.
func NewRootCmd() *cobra.Command {
	var (
		envFile string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "csvdash",
		Short: "Turn CSV files into dashboard metrics",
		Long: `csvdash reads CSV files and reports the headline numbers of each one:
column totals, first-to-last trends, units guessed from the headers, a time
series when a date or time column is present, and a one-line summary.

Run "csvdash serve" to start the web dashboard.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// A missing .env file is normal outside development.
			_ = godotenv.Load(envFile)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := "warn"
			if verbose || cmd.Name() == "serve" {
				level = cfg.Logging.Level
			}
			logging.SetupWriter(cmd.ErrOrStderr(), level, cfg.Logging.Format)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

// printError shows mapped messages for known failures and the raw error
// otherwise.
func printError(w io.Writer, err error) {
	if core.IsUserFacing(err) {
		fmt.Fprintf(w, "Error: %v\n  %s\n", err, core.FormatUserError(err))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// getConfig returns the configuration loaded by the root command, or the
// defaults when a command runs without it.
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
