// Package manifest decodes the package.json manifest of an extension package
// into a generic value tree and exposes the handful of fields the installer
// needs: the extension name, its display name, and the theme, grammar and
// snippet contribution paths. Unknown fields are ignored and wrong-typed
// optional fields fall back to defaults.
//
// Validate lints a manifest against an embedded JSON Schema. Linting is
// advisory; the installer never rejects a package on schema issues.
package manifest
