package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/cogmd/cogmd/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort  bool
	versionOutput string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", outputText, "Output format: text, json, yaml")
	rootCmd.AddCommand(versionCmd)
}

type versionReport struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(versionOutput); err != nil {
		return err
	}
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
		return nil
	}

	report := versionReport{
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	return writeOutput(cmd.OutOrStdout(), versionOutput, report, func(w io.Writer) {
		fmt.Fprintf(w, "%s version %s (commit: %s, built: %s, %s %s)\n",
			branding.CLIName(), report.Version, report.Commit, report.Date, report.GoVersion, report.Platform)
	})
}
