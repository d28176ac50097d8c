// Package filename parses comic archive file names into metadata fields
// and renders a preferred file name back from them.
//
// The grammar recognizes the common scene conventions: "#12" issue markers,
// "v2"/"vol 2" volumes, "(of 12)" issue counts, "(1999)" years, and
// "(Digital-Nahga)" original-format/scan-info parentheticals. Whatever
// remains becomes series then title, split on " - " dashes.
package filename
