package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cogmd/cogmd/internal/branding"
	"github.com/cogmd/cogmd/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
	logger   = log.New(io.Discard)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs editor extension packages (.vsix). Only color themes,
syntax grammars and snippets are extracted, into ~/` + branding.HomeDir() + `/extensions/<name>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := newLogger(cmd.ErrOrStderr(), resolveLogLevel())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// resolveLogLevel prefers the flag, then config / COGMD_LOG_LEVEL.
func resolveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return config.Get(config.KeyLogLevel)
}

// newLogger builds the stderr logger used by every command.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	}), nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
