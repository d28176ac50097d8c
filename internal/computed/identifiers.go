package computed

import (
	"panelbox/internal/identifiers"
	"panelbox/internal/metadata"
)

// deriveFromTags picks identifier encodings out of the free tag set. Only
// strict encodings count here; an arbitrary tag must never be mistaken for
// a database key.
func deriveFromTags(env *Env, current metadata.Record) metadata.Record {
	tags := current.Set(metadata.TagsKey)
	if len(tags) == 0 {
		return nil
	}
	ids := metadata.Identifiers{}
	for tag := range tags {
		if source, id := identifiers.FromText(tag, false); source != "" {
			addIdentifier(ids, source, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return metadata.Record{metadata.IdentifiersKey: ids}
}

// deriveIdentifiersFromWeb recognizes the web link as a database deep link
// and records the identifier it encodes.
func deriveIdentifiersFromWeb(env *Env, current metadata.Record) metadata.Record {
	web := current.String(metadata.WebKey)
	if web == "" {
		return nil
	}
	source, id := identifiers.FromURL(web)
	if source == "" {
		return nil
	}
	if _, ok := current.IdentifiersAt()[source]; ok {
		return nil
	}
	return metadata.Record{metadata.IdentifiersKey: metadata.Identifiers{source: id}}
}

// deriveWebFromIdentifiers backfills missing identifier deep links and
// synthesizes the web link from the best identifier when none is present.
// Source priority decides which identifier backs the web link.
func deriveWebFromIdentifiers(env *Env, current metadata.Record) metadata.Record {
	ids := current.IdentifiersAt()
	if len(ids) == 0 {
		return nil
	}
	filled := metadata.Identifiers{}
	for source, id := range ids {
		if id.URL != "" {
			continue
		}
		if generated := identifiers.New(source, id.IDKey, id.IDType, ""); generated.URL != "" {
			filled[source] = generated
		}
	}

	patch := metadata.Record{}
	if len(filled) > 0 {
		patch[metadata.IdentifiersKey] = filled
	}
	if current.String(metadata.WebKey) == "" {
		for _, source := range identifiers.SourcePriority {
			id, ok := ids[source]
			if !ok {
				continue
			}
			if fill, ok := filled[source]; ok {
				id = fill
			}
			if id.URL != "" {
				patch[metadata.WebKey] = id.URL
				break
			}
		}
	}
	if len(patch) == 0 {
		return nil
	}
	return patch
}
