package installer

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cogmd/cogmd/internal/vsix"
)

type mapReader map[string][]byte

func (m mapReader) ReadEntry(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", vsix.ErrEntryNotFound, name)
	}
	return data, nil
}

func TestDestination(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ext")

	tests := []struct {
		declared string
		want     string
		unsafe   bool
	}{
		{"themes/dark.json", filepath.Join(base, "themes", "dark.json"), false},
		{"./themes/dark.json", filepath.Join(base, "themes", "dark.json"), false},
		{"a/b/../c.json", filepath.Join(base, "a", "c.json"), false},
		{"top.json", filepath.Join(base, "top.json"), false},
		{"../x.json", "", true},
		{"a/../../x.json", "", true},
		{"/etc/passwd", "", true},
		{"", "", true},
		{".", "", true},
		{"themes/..", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			got, err := destination(base, tt.declared)
			if tt.unsafe {
				if !errors.Is(err, ErrUnsafePath) {
					t.Fatalf("expected ErrUnsafePath, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("destination = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSucceeded_FiltersFailures(t *testing.T) {
	results := []assetResult{
		{Path: "a.json"},
		{Path: "b.json", Err: ErrAssetUnavailable},
		{Path: "c.json"},
	}
	if got := succeeded(results); !reflect.DeepEqual(got, []string{"a.json", "c.json"}) {
		t.Errorf("succeeded = %v", got)
	}
	if got := succeeded(nil); got == nil || len(got) != 0 {
		t.Errorf("succeeded(nil) = %#v, want empty non-nil", got)
	}
}

func TestExtractAsset_ErrorsWrapUnavailable(t *testing.T) {
	res := extractAsset(mapReader{}, t.TempDir(), "themes/none.json")
	if !errors.Is(res.Err, ErrAssetUnavailable) {
		t.Fatalf("expected ErrAssetUnavailable, got %v", res.Err)
	}

	res = extractAsset(mapReader{}, t.TempDir(), "../up.json")
	if !errors.Is(res.Err, ErrAssetUnavailable) || !errors.Is(res.Err, ErrUnsafePath) {
		t.Fatalf("expected unsafe path wrapped as unavailable, got %v", res.Err)
	}
	if res.Dest != "" {
		t.Errorf("Dest = %q, want empty for rejected path", res.Dest)
	}
}

func TestReadAsset_ExactNameOnly(t *testing.T) {
	r := mapReader{"extension/themes/dark.json": []byte("dark")}

	data, err := readAsset(r, "themes/dark.json")
	if err != nil {
		t.Fatalf("readAsset: %v", err)
	}
	if string(data) != "dark" {
		t.Errorf("data = %q", data)
	}

	for _, declared := range []string{"./themes/dark.json", "themes//dark.json", "x/../themes/dark.json", "themes/light.json"} {
		if _, err := readAsset(r, declared); !errors.Is(err, vsix.ErrEntryNotFound) {
			t.Errorf("readAsset(%q) error = %v, want %v", declared, err, vsix.ErrEntryNotFound)
		}
	}
}

type nameSet map[string]bool

func (s nameSet) Has(name string) bool { return s[name] }

func TestLocate(t *testing.T) {
	a := nameSet{"extension/themes/dark.json": true}

	tests := []struct {
		declared string
		want     string
		found    bool
	}{
		{"themes/dark.json", "extension/themes/dark.json", true},
		{"./themes/dark.json", "", false},
		{"themes//dark.json", "", false},
		{"themes/light.json", "", false},
	}
	for _, tt := range tests {
		got, found := Locate(a, tt.declared)
		if got != tt.want || found != tt.found {
			t.Errorf("Locate(%q) = %q, %v; want %q, %v", tt.declared, got, found, tt.want, tt.found)
		}
	}
}

func TestCheckPath(t *testing.T) {
	if err := CheckPath("themes/dark.json"); err != nil {
		t.Errorf("CheckPath(safe): %v", err)
	}
	if err := CheckPath("../../x.json"); !errors.Is(err, ErrUnsafePath) {
		t.Errorf("CheckPath(traversal) = %v, want ErrUnsafePath", err)
	}
}
