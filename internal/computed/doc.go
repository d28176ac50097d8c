// Package computed derives metadata fields from the merged record and the
// archive's real contents.
//
// The pipeline is an ordered list of rules. Order is semantically
// significant: each rule observes the effects of every earlier rule and
// must not re-derive data that is already explicit. Rules produce patches
// that fold back into the running record with a declared combination
// strategy, so the mutually inverse pairs (issue name vs. parts, title vs.
// stories, cover date vs. date parts, web link vs. identifiers) are two
// one-directional passes, never a fixed point loop.
//
// Every rule catches its own failures; a malformed notes field or an
// unreadable archive entry degrades individual fields, never the pipeline.
package computed
