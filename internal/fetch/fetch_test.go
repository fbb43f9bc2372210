package fetch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	content := []byte("PK fake vsix bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "cogmd") {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
		w.Write(content)
	}))
	defer server.Close()

	var progress bytes.Buffer
	f := New(WithHTTPClient(server.Client()), WithProgress(&progress))

	destDir := t.TempDir()
	localPath, err := f.Download(context.Background(), server.URL+"/pkgs/demo-1.0.0.vsix", destDir)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if localPath != filepath.Join(destDir, "demo-1.0.0.vsix") {
		t.Errorf("localPath = %s", localPath)
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		t.Fatalf("reading download: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("content = %q, want %q", data, content)
	}
	if !strings.Contains(progress.String(), "100%") {
		t.Errorf("progress = %q, want 100%%", progress.String())
	}
}

func TestDownload_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	destDir := t.TempDir()
	_, err := New(WithHTTPClient(server.Client())).Download(context.Background(), server.URL+"/x.vsix", destDir)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	entries, _ := os.ReadDir(destDir)
	if len(entries) != 0 {
		t.Errorf("expected no files after failed download, got %d", len(entries))
	}
}

func TestDownload_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(WithHTTPClient(server.Client())).Download(ctx, server.URL+"/x.vsix", t.TempDir()); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestVerifySHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg.vsix")
	content := []byte("package bytes")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	sum := sha256.Sum256(content)
	good := hex.EncodeToString(sum[:])

	if err := VerifySHA256(path, good); err != nil {
		t.Errorf("VerifySHA256(good): %v", err)
	}
	if err := VerifySHA256(path, strings.ToUpper(good)); err != nil {
		t.Errorf("VerifySHA256(upper): %v", err)
	}
	if err := VerifySHA256(path, strings.Repeat("0", 64)); err == nil {
		t.Error("expected checksum mismatch")
	}
	if err := VerifySHA256(path, "abc"); err == nil {
		t.Error("expected error for short digest")
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"https://example.com/a.vsix", true},
		{"http://example.com/a.vsix", true},
		{"/tmp/a.vsix", false},
		{"a.vsix", false},
		{"file:///tmp/a.vsix", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.src); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestFileNameFor(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/dl/theme.vsix", "theme.vsix"},
		{"https://example.com/", "package.vsix"},
		{"https://example.com", "package.vsix"},
	}
	for _, tt := range tests {
		if got := fileNameFor(tt.url); got != tt.want {
			t.Errorf("fileNameFor(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
