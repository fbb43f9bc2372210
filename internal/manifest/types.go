package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Entry is the archive entry holding the package manifest.
const Entry = "extension/package.json"

// PayloadPrefix prefixes every archive entry that belongs to the extension.
const PayloadPrefix = "extension/"

var (
	// ErrMissingManifest is returned when the archive has no manifest entry.
	ErrMissingManifest = errors.New("package manifest missing")

	// ErrMalformedManifest is returned when the manifest is not valid JSON or
	// lacks a usable name.
	ErrMalformedManifest = errors.New("package manifest malformed")
)

// Category is a contribution point the installer extracts.
type Category string

// Contribution categories, in extraction order.
const (
	CategoryThemes   Category = "themes"
	CategoryGrammars Category = "grammars"
	CategorySnippets Category = "snippets"
)

// Categories lists every extracted category in extraction order.
var Categories = []Category{CategoryThemes, CategoryGrammars, CategorySnippets}

// Manifest is a decoded package manifest. Only Name and DisplayName are
// lifted out of the tree; everything else is read through Root.
type Manifest struct {
	Name        string
	DisplayName string
	Root        Value

	doc any
}

// Contributes returns the "contributes" object, or null when absent.
func (m *Manifest) Contributes() Value {
	return m.Root.Get("contributes")
}

// Contributions returns the elements of contributes.<c>. A missing or
// non-array value yields nil.
func (m *Manifest) Contributions(c Category) []Value {
	return m.Contributes().Get(string(c)).Arr()
}

// DeclaredPaths returns the usable "path" strings of contributes.<c> in
// declaration order. Elements without a string path are skipped.
func (m *Manifest) DeclaredPaths(c Category) []string {
	var paths []string
	for _, entry := range m.Contributions(c) {
		if p, ok := entry.Get("path").Str(); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// Publisher returns the publisher field, or "".
func (m *Manifest) Publisher() string {
	return m.Root.Get("publisher").StrOr("")
}

// Description returns the description field, or "".
func (m *Manifest) Description() string {
	return m.Root.Get("description").StrOr("")
}

// Version parses the manifest's version field as a semantic version.
func (m *Manifest) Version() (*semver.Version, error) {
	raw, ok := m.Root.Get("version").Str()
	if !ok {
		return nil, fmt.Errorf("manifest has no version string")
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", raw, err)
	}
	return v, nil
}

// EngineConstraint parses engines.vscode as a semver constraint.
func (m *Manifest) EngineConstraint() (*semver.Constraints, error) {
	raw, ok := m.Root.Get("engines").Get("vscode").Str()
	if !ok {
		return nil, fmt.Errorf("manifest has no engines.vscode string")
	}
	c, err := semver.NewConstraint(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing engine constraint %q: %w", raw, err)
	}
	return c, nil
}

// validName reports whether name can be used as a single directory
// component under the extensions root.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}
