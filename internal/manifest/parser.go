package manifest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cogmd/cogmd/internal/vsix"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// EntryReader reads named entries from a package archive.
type EntryReader interface {
	ReadEntry(name string) ([]byte, error)
}

// Load reads and decodes the manifest entry of an opened package.
func Load(a EntryReader) (*Manifest, error) {
	data, err := a.ReadEntry(Entry)
	if err != nil {
		if errors.Is(err, vsix.ErrEntryNotFound) {
			return nil, fmt.Errorf("%w: no %s in package", ErrMissingManifest, Entry)
		}
		if errors.Is(err, vsix.ErrEntryTooLarge) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
		}
		return nil, fmt.Errorf("reading %s: %w", Entry, err)
	}
	return Decode(data)
}

// Decode parses manifest bytes. The document must be a JSON object with a
// string name that is usable as a directory name. Optional fields that have
// the wrong type fall back to defaults instead of failing.
func Decode(data []byte) (*Manifest, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}

	root := FromAny(doc)
	if root.Kind() != KindObject {
		return nil, fmt.Errorf("%w: top-level value is %s, want object", ErrMalformedManifest, root.Kind())
	}

	name, ok := root.Get("name").Str()
	if !ok {
		return nil, fmt.Errorf("%w: missing required string field 'name'", ErrMalformedManifest)
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: name %q cannot be used as a directory name", ErrMalformedManifest, name)
	}

	return &Manifest{
		Name:        name,
		DisplayName: root.Get("displayName").StrOr(name),
		Root:        root,
		doc:         doc,
	}, nil
}
