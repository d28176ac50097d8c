// Package identifiers canonicalizes references to external comic database
// entries.
//
// Many formats encode the same reference differently: URN strings
// ("urn:comicvine:4000-12345"), bracketed tags ("[comicvine:12345]"),
// slash-delimited tags, or full URLs. This package resolves source aliases
// to one canonical source id and converts between the structured
// (source, type, key) form and each textual encoding. URL generation and
// parsing round-trip: parsing a generated URL recovers the original type
// and key.
package identifiers
