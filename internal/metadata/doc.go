// Package metadata defines the canonical field vocabulary shared by every
// format adapter and pipeline stage.
//
// A Record is a mapping from canonical field names to canonical values:
// scalars, string sets, ordered lists, index-keyed page maps, identifier
// maps keyed by database source, and nested sub-records for issue and date.
// Format-native field names never appear in a Record; adapters translate in
// both directions.
//
// Every canonical field carries a Kind in the schema table, which the merge
// engine dispatches on to select a combination policy.
package metadata
