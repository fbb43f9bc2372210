package cli

import (
	"fmt"
	"io"

	"github.com/cogmd/cogmd/internal/installer"
	"github.com/cogmd/cogmd/internal/manifest"
	"github.com/cogmd/cogmd/internal/vsix"
	"github.com/spf13/cobra"
)

var (
	inspectValidate bool
	inspectOutput   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <vsix-path>",
	Short: "Show what an extension package would install",
	Long: `Read an extension package without installing it. Prints the manifest
identity and every declared theme, grammar and snippet, marking assets that are
missing from the package or whose path would be rejected. With --validate the
manifest is also linted against the package schema.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectValidate, "validate", false, "Lint the manifest against the package schema")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", outputText, "Output format: text, json, yaml")
	rootCmd.AddCommand(inspectCmd)
}

type declaredAsset struct {
	Path    string `json:"path" yaml:"path"`
	Present bool   `json:"present" yaml:"present"`
	Problem string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

type inspectReport struct {
	Name          string                     `json:"name" yaml:"name"`
	DisplayName   string                     `json:"displayName" yaml:"displayName"`
	Publisher     string                     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Description   string                     `json:"description,omitempty" yaml:"description,omitempty"`
	Version       string                     `json:"version,omitempty" yaml:"version,omitempty"`
	Engine        string                     `json:"engine,omitempty" yaml:"engine,omitempty"`
	Contributions map[string][]declaredAsset `json:"contributions" yaml:"contributions"`
	Issues        []manifest.ValidationIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(inspectOutput); err != nil {
		return err
	}
	a, err := vsix.Open(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	m, err := manifest.Load(a)
	if err != nil {
		return err
	}

	report := buildInspectReport(a, m)

	if inspectValidate {
		result, err := m.Validate()
		if err != nil {
			return fmt.Errorf("validating manifest: %w", err)
		}
		report.Issues = result.Issues
	}

	return writeOutput(cmd.OutOrStdout(), inspectOutput, report, func(w io.Writer) {
		printInspectReport(w, report, inspectValidate)
	})
}

func buildInspectReport(a installer.EntryLookup, m *manifest.Manifest) *inspectReport {
	report := &inspectReport{
		Name:          m.Name,
		DisplayName:   m.DisplayName,
		Publisher:     m.Publisher(),
		Description:   m.Description(),
		Contributions: make(map[string][]declaredAsset, len(manifest.Categories)),
	}
	if v, err := m.Version(); err == nil {
		report.Version = v.String()
	} else {
		logger.Debug("manifest version unusable", "err", err)
	}
	if c, err := m.EngineConstraint(); err == nil {
		report.Engine = c.String()
	}

	for _, c := range manifest.Categories {
		assets := []declaredAsset{}
		for _, p := range m.DeclaredPaths(c) {
			asset := declaredAsset{Path: p}
			if err := installer.CheckPath(p); err != nil {
				asset.Problem = "unsafe path"
			} else if _, ok := installer.Locate(a, p); ok {
				asset.Present = true
			} else {
				asset.Problem = "missing from package"
			}
			assets = append(assets, asset)
		}
		report.Contributions[string(c)] = assets
	}
	return report
}

func printInspectReport(w io.Writer, r *inspectReport, validated bool) {
	fmt.Fprintf(w, "%s (%s)\n", bold.Sprint(r.DisplayName), r.Name)
	if r.Description != "" {
		fmt.Fprintf(w, "  %s\n", r.Description)
	}
	if r.Publisher != "" {
		fmt.Fprintf(w, "  publisher: %s\n", r.Publisher)
	}
	if r.Version != "" {
		fmt.Fprintf(w, "  version:   %s\n", r.Version)
	}
	if r.Engine != "" {
		fmt.Fprintf(w, "  engine:    %s\n", r.Engine)
	}

	for _, c := range manifest.Categories {
		assets := r.Contributions[string(c)]
		fmt.Fprintf(w, "  %s:\n", c)
		if len(assets) == 0 {
			fmt.Fprintln(w, "    (none)")
		}
		for _, asset := range assets {
			if asset.Present {
				fmt.Fprintf(w, "    %s %s\n", green.Sprint("✓"), asset.Path)
			} else {
				fmt.Fprintf(w, "    %s %s (%s)\n", red.Sprint("✗"), asset.Path, asset.Problem)
			}
		}
	}

	if !validated {
		return
	}
	if len(r.Issues) == 0 {
		fmt.Fprintf(w, "%s manifest matches the package schema\n", green.Sprint("✓"))
		return
	}
	fmt.Fprintf(w, "%s %d schema issue(s):\n", yellow.Sprint("⚠"), len(r.Issues))
	for _, issue := range r.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(w, "    %s: %s\n", loc, issue.Message)
	}
}
