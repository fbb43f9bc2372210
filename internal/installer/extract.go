package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cogmd/cogmd/internal/manifest"
)

const assetFilePerm os.FileMode = 0644

// assetResult is the outcome of extracting one declared asset.
type assetResult struct {
	Path string // declared path, as written in the manifest
	Dest string // destination on disk; empty when never resolved
	Err  error  // nil on success; wraps ErrAssetUnavailable otherwise
}

// extractCategory extracts every usable entry of contributes.<c>, returning
// one result per element that carries a string path.
func (i *Installer) extractCategory(a manifest.EntryReader, m *manifest.Manifest, c manifest.Category, installDir string) []assetResult {
	declared := m.DeclaredPaths(c)
	results := make([]assetResult, 0, len(declared))
	for _, p := range declared {
		res := extractAsset(a, installDir, p)
		if res.Err != nil {
			i.logger.Warn("skipping asset", "category", c, "path", p, "err", res.Err)
		} else {
			i.logger.Debug("installed asset", "category", c, "path", p, "dest", res.Dest)
		}
		results = append(results, res)
	}
	return results
}

// succeeded keeps the declared paths of successful results, in order.
func succeeded(results []assetResult) []string {
	paths := []string{}
	for _, res := range results {
		if res.Err == nil {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// extractAsset copies manifest.PayloadPrefix+declared from the archive to
// installDir/declared.
func extractAsset(a manifest.EntryReader, installDir, declared string) assetResult {
	res := assetResult{Path: declared}

	dest, err := destination(installDir, declared)
	if err != nil {
		res.Err = unavailable(declared, err)
		return res
	}
	res.Dest = dest

	data, err := readAsset(a, declared)
	if err != nil {
		res.Err = unavailable(declared, err)
		return res
	}

	if err := writeAsset(dest, data); err != nil {
		res.Err = unavailable(declared, err)
	}
	return res
}

// readAsset reads the entry named by the declared path exactly as written.
// "./a.json" and "a.json" are different entries.
func readAsset(a manifest.EntryReader, declared string) ([]byte, error) {
	return a.ReadEntry(manifest.PayloadPrefix + declared)
}

// destination joins declared onto installDir with host semantics and rejects
// results that would land outside installDir.
func destination(installDir, declared string) (string, error) {
	native := filepath.FromSlash(declared)
	if declared == "" || filepath.IsAbs(native) || filepath.VolumeName(native) != "" || strings.HasPrefix(declared, "/") {
		return "", fmt.Errorf("%w: %q is not a relative path", ErrUnsafePath, declared)
	}

	dest := filepath.Join(installDir, native)
	rel, err := filepath.Rel(installDir, dest)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the install directory", ErrUnsafePath, declared)
	}
	return dest, nil
}

// writeAsset ensures the parent directory exists, then writes data to dest,
// replacing any previous content.
func writeAsset(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, data, assetFilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

func unavailable(declared string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, declared, err)
}

// EntryLookup reports whether an archive holds a named entry.
type EntryLookup interface {
	Has(name string) bool
}

// Locate returns the archive entry a declared path resolves to, using the
// same exact-name lookup as extraction.
func Locate(a EntryLookup, declared string) (string, bool) {
	name := manifest.PayloadPrefix + declared
	if !a.Has(name) {
		return "", false
	}
	return name, true
}

// CheckPath reports whether declared would be accepted as an asset path.
// The returned error wraps ErrUnsafePath.
func CheckPath(declared string) error {
	_, err := destination(filepath.Join(string(filepath.Separator), "install"), declared)
	return err
}
