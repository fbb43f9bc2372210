package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cogmd/cogmd/internal/config"
	"github.com/cogmd/cogmd/internal/fetch"
	"github.com/cogmd/cogmd/internal/installer"
	"github.com/cogmd/cogmd/internal/manifest"
	"github.com/cogmd/cogmd/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	installSHA256 string
	installOutput string
)

var installCmd = &cobra.Command{
	Use:   "install <vsix-path|url>",
	Short: "Install the themes, grammars and snippets of an extension package",
	Long: `Install an extension package into ~/.cogmd/extensions/<name>/.
Only the color themes, syntax grammars and snippets declared in the package
manifest are extracted. Declared assets missing from the package are skipped.
A http(s) URL is downloaded to a temporary file first.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSHA256, "sha256", "", "Expected sha256 of the package; install is refused on mismatch")
	installCmd.Flags().StringVarP(&installOutput, "output", "o", outputText, "Output format: text, json, yaml")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(installOutput); err != nil {
		return err
	}
	src := args[0]

	home, err := userdata.HomeDir()
	if err != nil {
		return err
	}

	pkgPath := src
	if fetch.IsRemote(src) {
		tmpDir, err := os.MkdirTemp("", "cogmd-download-*")
		if err != nil {
			return fmt.Errorf("creating download directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		f := fetch.New(fetch.WithProgress(cmd.ErrOrStderr()))
		pkgPath, err = f.Download(cmd.Context(), src, tmpDir)
		if err != nil {
			return err
		}
	}

	if installSHA256 != "" {
		if err := fetch.VerifySHA256(pkgPath, installSHA256); err != nil {
			return err
		}
	}

	info, err := newInstaller().Install(pkgPath, home)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), installOutput, info, func(w io.Writer) {
		printInstallReport(w, info)
	})
}

// newInstaller wires the configured extensions directory and the CLI logger.
func newInstaller() *installer.Installer {
	opts := []installer.Option{installer.WithLogger(logger)}
	if dir := config.Get(config.KeyExtensionsDir); dir != "" {
		opts = append(opts, installer.WithExtensionsRoot(dir))
	}
	return installer.New(opts...)
}

func printInstallReport(w io.Writer, info *installer.ExtensionInfo) {
	fmt.Fprintf(w, "%s Installed %s (%s)\n", green.Sprint("✓"), bold.Sprint(info.DisplayName), info.Name)
	for _, c := range manifest.Categories {
		assets := info.Assets(c)
		fmt.Fprintf(w, "  %-9s %d\n", string(c)+":", len(assets))
		for _, p := range assets {
			fmt.Fprintf(w, "    %s\n", p)
		}
	}
	fmt.Fprintf(w, "  path:     %s\n", info.InstallPath)
	if info.AssetCount() == 0 {
		fmt.Fprintf(w, "%s no theme, grammar or snippet assets were installed\n", yellow.Sprint("⚠"))
	}
}
