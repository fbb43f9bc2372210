package vsix

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// MaxEntrySize caps the decompressed size of a single entry.
const MaxEntrySize = 64 << 20

var (
	// ErrInvalidArchive is returned when the container cannot be opened or
	// its zip structure is unreadable.
	ErrInvalidArchive = errors.New("invalid package archive")

	// ErrEntryNotFound is returned when a named entry is absent.
	ErrEntryNotFound = errors.New("archive entry not found")

	// ErrEntryTooLarge is returned when an entry exceeds MaxEntrySize.
	ErrEntryTooLarge = errors.New("archive entry too large")
)

// Archive is an opened package. It is safe for sequential use only.
type Archive struct {
	reader  *zip.Reader
	closer  io.Closer
	entries map[string]*zip.File
}

// Open opens the package archive at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrInvalidArchive, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %s: %v", ErrInvalidArchive, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidArchive, path)
	}

	a, err := newArchive(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.closer = f
	return a, nil
}

// NewArchive reads a package from an in-memory or otherwise random-access
// source. Close is a no-op for archives created this way.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	return newArchive(r, size)
}

func newArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && zr != nil) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		// First occurrence wins, matching central directory order.
		if _, dup := entries[f.Name]; !dup {
			entries[f.Name] = f
		}
	}

	return &Archive{reader: zr, entries: entries}, nil
}

// Has reports whether the archive contains a file entry with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// Names returns the sorted names of all file entries.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadEntry decompresses the named entry and returns its bytes.
func (a *Archive) ReadEntry(name string) (data []byte, err error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	if f.UncompressedSize64 > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrEntryTooLarge, name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening entry %s: %w", ErrInvalidArchive, name, err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing entry %s: %w", name, closeErr)
		}
	}()

	// Read one byte past the cap so a lying header is still caught.
	data, err = io.ReadAll(io.LimitReader(rc, MaxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry %s: %w", ErrInvalidArchive, name, err)
	}
	if len(data) > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, name)
	}
	return data, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
