// Package vsixtest builds package archives for tests.
package vsixtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// Bytes returns a zip container holding the given entries. Entries are
// written in sorted name order so archives are reproducible.
func Bytes(t testing.TB, entries map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}
	return buf.Bytes()
}

// Write stores a zip container with the given entries in a temp directory
// and returns its path.
func Write(t testing.TB, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "package.vsix")
	if err := os.WriteFile(path, Bytes(t, entries), 0644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
	return path
}

// Manifest returns the entries map for a package whose manifest is the given
// JSON document, plus any extra entries.
func Manifest(manifestJSON string, extra map[string]string) map[string]string {
	entries := map[string]string{"extension/package.json": manifestJSON}
	for k, v := range extra {
		entries[k] = v
	}
	return entries
}
