package userdata

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHomeDir_EnvOverride(t *testing.T) {
	t.Setenv("COGMD_HOME", "/tmp/test-home")
	home, err := HomeDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if home != "/tmp/test-home" {
		t.Errorf("expected /tmp/test-home, got %s", home)
	}
}

func TestHomeDir_Default(t *testing.T) {
	t.Setenv("COGMD_HOME", "")
	home, err := HomeDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ := os.UserHomeDir()
	if home != expected {
		t.Errorf("expected %s, got %s", expected, home)
	}
}

func TestExtensionsRoot(t *testing.T) {
	got := ExtensionsRoot("/home/u")
	want := filepath.Join("/home/u", ".cogmd", "extensions")
	if got != want {
		t.Errorf("ExtensionsRoot = %s, want %s", got, want)
	}
}

func TestInstallDir(t *testing.T) {
	got := InstallDir("/root/ext", "demo")
	want := filepath.Join("/root/ext", "demo")
	if got != want {
		t.Errorf("InstallDir = %s, want %s", got, want)
	}
}

func TestInstalledExtensions(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"zeta", "alpha", ".staging"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := InstalledExtensions(root)
	if err != nil {
		t.Fatalf("InstalledExtensions: %v", err)
	}
	want := []string{"alpha", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestInstalledExtensions_MissingRoot(t *testing.T) {
	names, err := InstalledExtensions(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", names)
	}
}
