package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/cogmd/cogmd/internal/manifest"
	"github.com/cogmd/cogmd/internal/userdata"
	"github.com/cogmd/cogmd/internal/vsix"
)

const dirPerm = userdata.DirPermNormal

var (
	// ErrDirectoryUnwritable is returned when the install directory cannot
	// be created.
	ErrDirectoryUnwritable = errors.New("install directory unwritable")

	// ErrAssetUnavailable marks a declared asset that was not installed.
	// It never escapes Install; it is logged and the asset is left out of
	// the report.
	ErrAssetUnavailable = errors.New("asset unavailable")

	// ErrUnsafePath marks a declared asset path that would resolve outside
	// the install directory.
	ErrUnsafePath = errors.New("unsafe asset path")
)

// Installer extracts extension packages.
type Installer struct {
	logger         *log.Logger
	extensionsRoot string
}

// Option configures an Installer.
type Option func(*Installer)

// WithLogger sets the logger used for per-asset diagnostics. A nil logger
// leaves the default in place.
func WithLogger(l *log.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithExtensionsRoot installs under dir instead of <home>/.cogmd/extensions.
func WithExtensionsRoot(dir string) Option {
	return func(i *Installer) {
		i.extensionsRoot = dir
	}
}

// New creates an Installer. Without WithLogger nothing is logged.
func New(opts ...Option) *Installer {
	i := &Installer{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ExtensionsRoot returns the directory extensions are installed under for
// the given home directory.
func (i *Installer) ExtensionsRoot(home string) (string, error) {
	if i.extensionsRoot != "" {
		return i.extensionsRoot, nil
	}
	if home == "" {
		return "", fmt.Errorf("%w: no home directory given", ErrDirectoryUnwritable)
	}
	return userdata.ExtensionsRoot(home), nil
}

// Install extracts the package at archivePath into
// <home>/.cogmd/extensions/<name>. It returns either a complete report or an
// error, never both.
func (i *Installer) Install(archivePath, home string) (*ExtensionInfo, error) {
	root, err := i.ExtensionsRoot(home)
	if err != nil {
		return nil, err
	}

	a, err := vsix.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}
	defer a.Close()

	m, err := manifest.Load(a)
	if err != nil {
		return nil, fmt.Errorf("loading manifest of %s: %w", archivePath, err)
	}

	installDir, err := filepath.Abs(userdata.InstallDir(root, m.Name))
	if err != nil {
		return nil, fmt.Errorf("%w: resolving install path: %v", ErrDirectoryUnwritable, err)
	}
	if err := os.MkdirAll(installDir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrDirectoryUnwritable, installDir, err)
	}

	i.logger.Info("installing extension", "name", m.Name, "dest", installDir)

	installed := make(map[manifest.Category][]string, len(manifest.Categories))
	for _, c := range manifest.Categories {
		installed[c] = succeeded(i.extractCategory(a, m, c, installDir))
	}

	info := buildReport(m, installDir, installed)
	i.logger.Info("installed extension", "name", info.Name, "assets", info.AssetCount())
	return info, nil
}
