// Package userdata resolves the per-user directories CogMD works in: the home
// directory that anchors ~/.cogmd, and the extensions root beneath it where
// every installed extension gets its own directory.
package userdata
