package userdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cogmd/cogmd/internal/branding"
)

// ExtensionsDir is the directory under ~/.cogmd holding installed extensions.
const ExtensionsDir = "extensions"

// DirPermNormal is the mode used for directories created under ~/.cogmd.
const DirPermNormal os.FileMode = 0755

// HomeDir returns the directory that anchors ~/.cogmd.
// It checks the COGMD_HOME environment variable first,
// then falls back to the user's home directory.
func HomeDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// ExtensionsRoot returns <home>/.cogmd/extensions.
func ExtensionsRoot(home string) string {
	return filepath.Join(home, branding.HomeDir(), ExtensionsDir)
}

// InstallDir returns the install directory of a single extension.
func InstallDir(root, name string) string {
	return filepath.Join(root, name)
}

// InstalledExtensions returns the sorted names of the extension directories
// under root. A missing root yields an empty list.
func InstalledExtensions(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading extensions directory %s: %w", root, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
