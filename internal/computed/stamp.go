package computed

import (
	"sort"
	"strings"
	"time"

	"panelbox/internal/identifiers"
	"panelbox/internal/metadata"
)

// deriveStamp records this run's tagger signature. It only fires when a
// write or export is configured, so read-only inspection stays a pure
// function of the sources.
func deriveStamp(env *Env, current metadata.Record) metadata.Record {
	cfg := env.Config
	if cfg == nil || !cfg.Writing() {
		return nil
	}
	tagger := cfg.Stamping.Tagger
	now := env.now()
	patch := metadata.Record{
		metadata.TaggerKey:    tagger,
		metadata.UpdatedAtKey: now,
	}
	if cfg.Stamping.StampNotes {
		patch[metadata.NotesKey] = stampNotes(tagger, now, current.IdentifiersAt())
	}
	return patch
}

// stampNotes renders the notes line other taggers know how to read back.
func stampNotes(tagger string, now time.Time, ids metadata.Identifiers) string {
	var b strings.Builder
	b.WriteString("Tagged with ")
	b.WriteString(tagger)
	b.WriteString(" on ")
	b.WriteString(now.Format(time.RFC3339))
	if id, ok := ids[identifiers.DefaultSource]; ok && id.IDKey != "" {
		b.WriteString(" [Issue ID ")
		b.WriteString(id.IDKey)
		b.WriteString("]")
	}
	urns := make([]string, 0, len(ids))
	for source, id := range ids {
		if urn := identifiers.URNString(source, id.IDType, id.IDKey); urn != "" {
			urns = append(urns, urn)
		}
	}
	sort.Strings(urns)
	for _, urn := range urns {
		b.WriteString(" ")
		b.WriteString(urn)
	}
	return b.String()
}
