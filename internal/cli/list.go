package cli

import (
	"fmt"
	"io"

	"github.com/cogmd/cogmd/internal/userdata"
	"github.com/spf13/cobra"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed extensions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputText, "Output format: text, json, yaml")
	rootCmd.AddCommand(listCmd)
}

type listReport struct {
	Root       string   `json:"root" yaml:"root"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

func runList(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(listOutput); err != nil {
		return err
	}
	home, err := userdata.HomeDir()
	if err != nil {
		return err
	}
	root, err := newInstaller().ExtensionsRoot(home)
	if err != nil {
		return err
	}

	names, err := userdata.InstalledExtensions(root)
	if err != nil {
		return err
	}

	report := listReport{Root: root, Extensions: names}
	return writeOutput(cmd.OutOrStdout(), listOutput, report, func(w io.Writer) {
		if len(names) == 0 {
			fmt.Fprintf(w, "No extensions installed in %s\n", root)
			return
		}
		fmt.Fprintf(w, "Installed extensions (%s):\n", root)
		for _, name := range names {
			fmt.Fprintf(w, "  %s\n", name)
		}
	})
}
