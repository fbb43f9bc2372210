// Package fetch downloads remote extension packages to a local file so the
// installer only ever deals with filesystem paths. Downloads stream to disk
// with a percentage indicator and can be checked against a sha256 digest.
package fetch
