package computed

import (
	"regexp"
	"strings"
	"time"

	"panelbox/internal/identifiers"
	"panelbox/internal/metadata"
)

// The notes grammar written by mainstream tagger tools:
//
//	Tagged with comictagger 1.6.0 on 2024-03-02 12:00:00 using info from
//	Comic Vine [Issue ID 145269] urn:comicvine:4000-145269
var (
	notesTaggerRE  = regexp.MustCompile(`(?i)tagged\s+(?:with|by)\s+(?P<tagger>\w+(?:\s(?:dev|test|[\d.]+\S*))?)`)
	notesDateRE    = regexp.MustCompile(`(?i)\son\s(?P<date>[12]\d{3}-[01]\d-[0-3]\d(?:[\sT][0-2]\d:[0-5]\d:[0-5]\d(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?)?)`)
	notesOriginRE  = regexp.MustCompile(`(?i)\susing\sinfo\sfrom\s(?P<origin>\w+(?: \w+)*)`)
	notesIssueIDRE = regexp.MustCompile(`(?i)\[issue\sid\s(?P<key>[\w-]+)\]`)
	notesURNRE     = regexp.MustCompile(`(?i)urn:\S{2,}:\S{2,}`)
	notesBracketRE = regexp.MustCompile(`\[(?P<source>[\w.]+):(?P<key>[\w-]+)\]`)
	notesRelDateRE = regexp.MustCompile(`(?i)\[reldate:(?P<reldate>\S+)\]`)
)

var noteTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// deriveFromNotes recovers structured fields from the free-text notes a
// previous tagger left behind. Nothing here ever overwrites an explicit
// field.
func deriveFromNotes(env *Env, current metadata.Record) metadata.Record {
	notes := current.String(metadata.NotesKey)
	if notes == "" {
		return nil
	}
	patch := metadata.Record{}

	if current.String(metadata.TaggerKey) == "" {
		if m := notesTaggerRE.FindStringSubmatch(notes); m != nil {
			patch[metadata.TaggerKey] = strings.TrimSpace(m[1])
		}
	}
	if _, ok := current.Time(metadata.UpdatedAtKey); !ok {
		if m := notesDateRE.FindStringSubmatch(notes); m != nil {
			if ts, ok := parseNoteTimestamp(m[1]); ok {
				patch[metadata.UpdatedAtKey] = ts
			}
		}
	}

	ids := metadata.Identifiers{}
	issueSource := identifiers.DefaultSource
	if m := notesOriginRE.FindStringSubmatch(notes); m != nil {
		if resolved := resolveOrigin(m[1]); resolved != "" {
			issueSource = resolved
		}
	}
	if m := notesIssueIDRE.FindStringSubmatch(notes); m != nil {
		addIdentifier(ids, issueSource, identifiers.New(issueSource, m[1], "", ""))
	}
	for _, token := range notesURNRE.FindAllString(notes, -1) {
		if source, id := identifiers.FromText(token, false); source != "" {
			addIdentifier(ids, source, id)
		}
	}
	for _, m := range notesBracketRE.FindAllStringSubmatch(notes, -1) {
		if source := identifiers.ResolveAlias(m[1], false); source != "" {
			addIdentifier(ids, source, identifiers.New(source, m[2], "", ""))
		}
	}
	if len(ids) > 0 {
		patch[metadata.IdentifiersKey] = ids
	}

	if m := notesRelDateRE.FindStringSubmatch(notes); m != nil {
		if _, ok := current.CoverDate(); !ok {
			if ts, ok := parseNoteTimestamp(m[1]); ok {
				patch[metadata.DateKey] = metadata.Record{metadata.CoverDateKey: ts}
			}
		}
	}

	if len(patch) == 0 {
		return nil
	}
	return patch
}

func parseNoteTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range noteTimestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// resolveOrigin maps a captured origin phrase to a source id. The capture
// can run past the real origin into following words, so the longest
// resolvable word prefix wins.
func resolveOrigin(phrase string) string {
	words := strings.Fields(phrase)
	for n := len(words); n > 0; n-- {
		if source := identifiers.SourceByName(strings.Join(words[:n], " ")); source != "" {
			return source
		}
	}
	return ""
}

func addIdentifier(ids metadata.Identifiers, source string, id metadata.Identifier) {
	if _, ok := ids[source]; !ok {
		ids[source] = id
	}
}
