// Package book binds one comic archive to its metadata lifecycle: source
// discovery, precedence-ordered merging, computed derivation, and writing
// the result back into the archive.
//
// Every derived view is cached and every mutation invalidates all of them,
// so a Book always answers from a consistent snapshot of its sources.
package book
