// Package archive reads and rewrites cbz comic containers.
//
// Readers expose entry listing, per-entry sizes, entry contents, and the
// archive comment; that is everything the metadata pipeline needs to count
// pages and locate sidecar files. Rewrite replaces sidecar metadata files
// and the comment atomically: a new archive is assembled under a temporary
// name while holding a file lock, then renamed over the original.
package archive
