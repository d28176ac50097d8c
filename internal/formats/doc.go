// Package formats translates between canonical metadata records and the
// tagging formats found in comic archives: ComicInfo.xml sidecars,
// ComicBookInfo archive comments, the native panelbox YAML and JSON
// sidecars, and the archive file name itself.
//
// Adapters are lossy by design. Each one maps whatever its format can
// express onto canonical fields and silently drops the rest; the merge
// fold across formats is what reassembles a complete record.
package formats
