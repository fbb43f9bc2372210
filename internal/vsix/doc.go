// Package vsix opens VSIX-style extension packages. A package is a zip
// container whose entries are addressed by forward-slash paths regardless of
// the host OS; the extension payload lives under the "extension/" prefix.
//
// An Archive indexes its entries once when opened, so repeated lookups do not
// rescan the central directory.
package vsix
