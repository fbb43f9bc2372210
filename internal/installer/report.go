package installer

import "github.com/cogmd/cogmd/internal/manifest"

// ExtensionInfo describes a completed install. The asset lists hold the
// declared relative paths that were located in the package and written to
// disk, in manifest order.
type ExtensionInfo struct {
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Themes      []string `json:"themes" yaml:"themes"`
	Grammars    []string `json:"grammars" yaml:"grammars"`
	Snippets    []string `json:"snippets" yaml:"snippets"`
	InstallPath string   `json:"installPath" yaml:"installPath"`
}

// Assets returns the installed paths of one category.
func (e *ExtensionInfo) Assets(c manifest.Category) []string {
	switch c {
	case manifest.CategoryThemes:
		return e.Themes
	case manifest.CategoryGrammars:
		return e.Grammars
	case manifest.CategorySnippets:
		return e.Snippets
	default:
		return nil
	}
}

// AssetCount returns the number of installed assets across all categories.
func (e *ExtensionInfo) AssetCount() int {
	return len(e.Themes) + len(e.Grammars) + len(e.Snippets)
}

// buildReport assembles the result of an install. It cannot fail.
func buildReport(m *manifest.Manifest, installPath string, installed map[manifest.Category][]string) *ExtensionInfo {
	return &ExtensionInfo{
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Themes:      nonNil(installed[manifest.CategoryThemes]),
		Grammars:    nonNil(installed[manifest.CategoryGrammars]),
		Snippets:    nonNil(installed[manifest.CategorySnippets]),
		InstallPath: installPath,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
