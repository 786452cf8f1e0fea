// Package cli wires shardctl's cobra commands to the orchestrator.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shardctl/shardctl/internal/apperrors"
	"github.com/shardctl/shardctl/internal/config"
	"github.com/shardctl/shardctl/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var (
	prefs    config.Config
	prefsErr error

	flagLogLevel string
	flagLogJSON  bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "shardctl",
	Short: "Split and reconstruct secrets with Shamir's Secret Sharing",
	Long: `shardctl implements Shamir's Secret Sharing over GF(2^8), byte-wise,
for arbitrarily long secrets up to 64 KiB. Input is read from stdin and
output is written to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		PrintError("%s", apperrors.SanitizeError(err))
		return apperrors.ExitCode(err)
	}
	return 0
}

// SetVersion sets the version string reported by `shardctl --version`.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default from config, else info)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "emit logs as JSON instead of console text")
	cobra.OnInitialize(initPrefs, initLogging)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initPrefs() {
	prefs, prefsErr = config.Load("")
}

func initLogging() {
	level := prefs.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	jsonOut := prefs.LogJSON || flagLogJSON
	_ = logging.Init(logging.Config{Level: level, JSON: jsonOut})
}

// Preferences returns the loaded CLI preferences. If loading failed,
// Default() preferences are returned; callers that care can inspect
// PreferencesError.
func Preferences() config.Config {
	if prefsErr != nil {
		return config.Default()
	}
	return prefs
}

// PreferencesError reports whether loading the preferences file failed.
func PreferencesError() error {
	return prefsErr
}
