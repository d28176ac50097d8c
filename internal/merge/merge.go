package merge

import (
	"sort"

	"panelbox/internal/metadata"
)

// Strategy selects the global combination behavior for one fold.
type Strategy int

const (
	// Additive is the default multi-source overlay: collections combine,
	// scalars take the later value.
	Additive Strategy = iota
	// Replace makes the later record fully supersede the earlier one,
	// key by key.
	Replace
)

// Records folds each source record into dst in order. dst is mutated and
// returned.
func Records(dst metadata.Record, strategy Strategy, sources ...metadata.Record) metadata.Record {
	for _, src := range sources {
		mergeRecord(dst, src, strategy)
	}
	return dst
}

func mergeRecord(dst, src metadata.Record, strategy Strategy) {
	for key, value := range src {
		if metadata.IsEmpty(value) {
			continue
		}
		old, ok := dst[key]
		if !ok || metadata.IsEmpty(old) {
			dst[key] = metadata.CloneValue(value)
			continue
		}
		mergeKey(dst, key, old, value, strategy)
	}
}

func mergeKey(dst metadata.Record, key string, old, value any, strategy Strategy) {
	kind := metadata.KindOf(key)
	if strategy == Replace && kind != metadata.KindNested {
		dst[key] = metadata.CloneValue(value)
		return
	}
	switch kind {
	case metadata.KindAlwaysReplace:
		dst[key] = metadata.CloneValue(value)
	case metadata.KindSet:
		mergeSet(dst, key, old, value)
	case metadata.KindList:
		mergeList(dst, key, old, value)
	case metadata.KindPageMap:
		mergePages(dst, key, old, value)
	case metadata.KindIdentifierMap:
		mergeIdentifiers(dst, key, old, value)
	case metadata.KindCreditMap:
		mergeCredits(dst, key, old, value)
	case metadata.KindReprintList:
		mergeReprints(dst, key, old, value)
	case metadata.KindNested:
		mergeNested(dst, key, old, value, strategy)
	default:
		dst[key] = metadata.CloneValue(value)
	}
}

// Mismatched dynamic types fall back to replacement rather than failing;
// messy source data must never abort the fold.

func mergeSet(dst metadata.Record, key string, old, value any) {
	oldSet, okOld := old.(metadata.StringSet)
	newSet, okNew := value.(metadata.StringSet)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	merged := oldSet.Clone()
	merged.Union(newSet)
	dst[key] = merged
}

func mergeList(dst metadata.Record, key string, old, value any) {
	oldList, okOld := old.([]string)
	newList, okNew := value.([]string)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	seen := make(map[string]struct{}, len(oldList)+len(newList))
	merged := make([]string, 0, len(oldList)+len(newList))
	for _, item := range append(append([]string{}, oldList...), newList...) {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		merged = append(merged, item)
	}
	sort.Strings(merged)
	dst[key] = merged
}

// MergePages overlays src onto dst keyed by page index; for indexes present
// on both sides the src page's set attributes win.
func MergePages(dst, src metadata.Pages) metadata.Pages {
	out := dst.Clone()
	if out == nil {
		out = metadata.Pages{}
	}
	for index, page := range src {
		out[index] = out[index].Overlay(page)
	}
	return out
}

func mergePages(dst metadata.Record, key string, old, value any) {
	oldPages, okOld := old.(metadata.Pages)
	newPages, okNew := value.(metadata.Pages)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	dst[key] = MergePages(oldPages, newPages)
}

// MergeIdentifiers adds sources from src that dst does not already know.
// An existing identifier is kept, though blank key/url attributes are
// filled in from the newcomer.
func MergeIdentifiers(dst, src metadata.Identifiers) metadata.Identifiers {
	out := dst.Clone()
	if out == nil {
		out = metadata.Identifiers{}
	}
	for source, id := range src {
		existing, ok := out[source]
		if !ok {
			out[source] = id
			continue
		}
		if existing.IDKey == "" {
			existing.IDKey = id.IDKey
		}
		if existing.IDType == "" {
			existing.IDType = id.IDType
		}
		if existing.URL == "" {
			existing.URL = id.URL
		}
		out[source] = existing
	}
	return out
}

func mergeIdentifiers(dst metadata.Record, key string, old, value any) {
	oldIDs, okOld := old.(metadata.Identifiers)
	newIDs, okNew := value.(metadata.Identifiers)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	dst[key] = MergeIdentifiers(oldIDs, newIDs)
}

func mergeCredits(dst metadata.Record, key string, old, value any) {
	oldCredits, okOld := old.(metadata.Credits)
	newCredits, okNew := value.(metadata.Credits)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	merged := oldCredits.Clone()
	for person, roles := range newCredits {
		for role := range roles {
			merged.Add(person, role)
		}
		if len(roles) == 0 {
			merged.Add(person, "")
		}
	}
	dst[key] = merged
}

func mergeReprints(dst metadata.Record, key string, old, value any) {
	oldReprints, okOld := old.([]metadata.Reprint)
	newReprints, okNew := value.([]metadata.Reprint)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	dst[key] = metadata.SortReprints(append(append([]metadata.Reprint{}, oldReprints...), newReprints...))
}

func mergeNested(dst metadata.Record, key string, old, value any, strategy Strategy) {
	oldSub, okOld := old.(metadata.Record)
	newSub, okNew := value.(metadata.Record)
	if !okOld || !okNew {
		dst[key] = metadata.CloneValue(value)
		return
	}
	merged := oldSub.Clone()
	mergeRecord(merged, newSub, strategy)
	dst[key] = merged
}
