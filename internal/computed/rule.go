package computed

import (
	"log/slog"
	"time"

	"panelbox/internal/config"
	"panelbox/internal/merge"
	"panelbox/internal/metadata"
)

// PageInfo describes one image entry in the archive, in page order.
type PageInfo struct {
	Name string
	Size int64
}

// Env carries everything a derivation rule may consult besides the record
// itself. ArchivePages is nil when the instance has no archive to read.
type Env struct {
	Config       *config.Config
	Logger       *slog.Logger
	Path         string
	ArchivePages []PageInfo
	HasArchive   bool
	Now          func() time.Time

	deleteKeys map[string]struct{}
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

func (e *Env) markDelete(keyPath string) {
	if e.deleteKeys == nil {
		e.deleteKeys = make(map[string]struct{})
	}
	e.deleteKeys[keyPath] = struct{}{}
}

// Rule is one derivation step. Derive returns a patch to fold into the
// running record, or nil when the rule has nothing to contribute.
type Rule struct {
	Label    string
	Strategy merge.Strategy
	Derive   func(env *Env, current metadata.Record) metadata.Record
}

// Patch records one rule's non-empty contribution, kept for diagnostic
// display.
type Patch struct {
	Label    string
	Strategy merge.Strategy
	Record   metadata.Record
}

// Rules returns the derivation chain in its canonical order.
func Rules() []Rule {
	return []Rule{
		{Label: "page count", Strategy: merge.Replace, Derive: derivePageCount},
		{Label: "pages", Strategy: merge.Replace, Derive: derivePages},
		{Label: "from issue", Strategy: merge.Additive, Derive: deriveIssueParts},
		{Label: "from issue parts", Strategy: merge.Additive, Derive: deriveIssueName},
		{Label: "from notes", Strategy: merge.Additive, Derive: deriveFromNotes},
		{Label: "from tags", Strategy: merge.Additive, Derive: deriveFromTags},
		{Label: "from web", Strategy: merge.Additive, Derive: deriveIdentifiersFromWeb},
		{Label: "web from identifiers", Strategy: merge.Additive, Derive: deriveWebFromIdentifiers},
		{Label: "from date", Strategy: merge.Additive, Derive: deriveDate},
		{Label: "from title", Strategy: merge.Additive, Derive: deriveStoriesFromTitle},
		{Label: "from stories", Strategy: merge.Replace, Derive: deriveTitleFromStories},
		{Label: "tagger stamp", Strategy: merge.Replace, Derive: deriveStamp},
	}
}
