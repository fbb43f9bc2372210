// Package installer materializes the theme, grammar and snippet assets of an
// extension package under ~/.cogmd/extensions/<name> and reports what was
// installed.
//
// Install is a single synchronous pass: open the archive, load the manifest,
// create the install directory, extract each category, build the report.
// Failures before extraction abort the call. Failures of an individual asset
// only shorten that category's list in the report.
//
// An Installer holds no mutable state, so concurrent installs of different
// extensions are safe. Installs of the same extension must be serialized by
// the caller.
package installer
