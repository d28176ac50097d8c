package book

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"panelbox/internal/archive"
	"panelbox/internal/computed"
	"panelbox/internal/config"
	"panelbox/internal/formats"
	"panelbox/internal/merge"
	"panelbox/internal/metadata"
)

// Book is one comic archive and its metadata state.
type Book struct {
	cfg    *config.Config
	logger *slog.Logger
	path   string

	mu           sync.Mutex
	added        []SourceRecord
	sources      []SourceRecord
	archivePages []computed.PageInfo
	hasArchive   bool
	loaded       bool
	merged       metadata.Record
	derived      metadata.Record
	patches      []computed.Patch
}

// New binds a Book to an archive path.
func New(cfg *config.Config, logger *slog.Logger, path string) *Book {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Book{cfg: cfg, logger: logger, path: path}
}

// Path returns the archive path the book is bound to.
func (b *Book) Path() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.path
}

// AddSource attaches a record as the highest-precedence source and drops
// every cached view.
func (b *Book) AddSource(record metadata.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.added = append(b.added, SourceRecord{
		Source: SourceAdded,
		Origin: "runtime",
		Record: record.Clone(),
	})
	b.invalidate()
}

// invalidate drops every cached view. Callers hold b.mu.
func (b *Book) invalidate() {
	b.sources = nil
	b.archivePages = nil
	b.hasArchive = false
	b.loaded = false
	b.merged = nil
	b.derived = nil
	b.patches = nil
}

// Sources returns every discovered source record in precedence order.
func (b *Book) Sources() ([]SourceRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.load(); err != nil {
		return nil, err
	}
	out := make([]SourceRecord, len(b.sources))
	copy(out, b.sources)
	return out, nil
}

// Merged folds every source into one record under the configured strategy.
func (b *Book) Merged() (metadata.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.mergeLocked(); err != nil {
		return nil, err
	}
	return b.merged.Clone(), nil
}

// Computed returns the merged record after the derivation chain, with the
// patches each rule contributed.
func (b *Book) Computed() (metadata.Record, []computed.Patch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.computeLocked(); err != nil {
		return nil, nil, err
	}
	patches := make([]computed.Patch, len(b.patches))
	copy(patches, b.patches)
	return b.derived.Clone(), patches, nil
}

// Metadata returns the final record.
func (b *Book) Metadata() (metadata.Record, error) {
	record, _, err := b.Computed()
	return record, err
}

func (b *Book) mergeLocked() error {
	if b.merged != nil {
		return nil
	}
	if err := b.load(); err != nil {
		return err
	}
	strategy := merge.Additive
	if b.cfg.ReplaceMetadata {
		strategy = merge.Replace
	}
	merged := metadata.Record{}
	for _, source := range b.sources {
		merge.Records(merged, strategy, source.Record)
	}
	b.merged = merged
	return nil
}

func (b *Book) computeLocked() error {
	if b.derived != nil {
		return nil
	}
	if err := b.mergeLocked(); err != nil {
		return err
	}
	env := &computed.Env{
		Config:       b.cfg,
		Logger:       b.logger,
		Path:         b.path,
		ArchivePages: b.archivePages,
		HasArchive:   b.hasArchive,
	}
	b.derived, b.patches = computed.Compute(env, b.merged)
	return nil
}

// load discovers sources from configuration, the file name, the archive,
// imports, and the command line, in registry precedence order. A malformed
// individual source is logged and skipped; only a missing or unreadable
// archive is fatal.
func (b *Book) load() error {
	if b.loaded {
		return nil
	}
	enabled := make(map[string]struct{}, len(b.cfg.Formats.Read))
	for _, name := range b.cfg.Formats.Read {
		enabled[name] = struct{}{}
	}
	var sources []SourceRecord
	add := func(source Source, format, origin string, record metadata.Record, err error) {
		if err != nil {
			b.logger.Warn("skipping unreadable metadata source",
				"source", source.Label(),
				"format", format,
				"origin", origin,
				"error", err)
			return
		}
		if len(record) == 0 {
			return
		}
		sources = append(sources, SourceRecord{
			Source: source,
			Format: format,
			Origin: origin,
			Record: record,
		})
	}

	for _, fragment := range b.cfg.Metadata {
		record, err := formats.ParseFragment([]byte(fragment))
		add(SourceConfig, formats.NameComicboxYAML, "config", record, err)
	}

	if _, ok := enabled[formats.NameFilename]; ok {
		adapter, _ := formats.ByName(formats.NameFilename)
		record, err := adapter.Parse([]byte(filepath.Base(b.path)))
		add(SourceFilename, formats.NameFilename, b.path, record, err)
	}

	if err := b.loadArchive(enabled, add); err != nil {
		return err
	}

	for _, importPath := range b.cfg.ImportPaths {
		name := adapterForPath(importPath)
		if name == "" {
			add(SourceImport, "", importPath, nil,
				fmt.Errorf("no metadata format for %s", importPath))
			continue
		}
		adapter, _ := formats.ByName(name)
		data, err := os.ReadFile(importPath)
		if err == nil {
			var record metadata.Record
			record, err = adapter.Parse(data)
			add(SourceImport, name, importPath, record, err)
			continue
		}
		add(SourceImport, name, importPath, nil, err)
	}

	for _, fragment := range b.cfg.CLIMetadata {
		record, err := formats.ParseFragment([]byte(fragment))
		add(SourceCLI, formats.NameComicboxYAML, "cli", record, err)
	}

	sources = append(sources, b.added...)
	b.sources = sources
	b.loaded = true
	return nil
}

func (b *Book) loadArchive(enabled map[string]struct{}, add func(Source, string, string, metadata.Record, error)) error {
	reader, err := archive.Open(b.path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, entry := range reader.ImageEntries() {
		b.archivePages = append(b.archivePages, computed.PageInfo{
			Name: entry.Name,
			Size: entry.Size,
		})
	}
	b.hasArchive = true

	if _, ok := enabled[formats.NameComicBookInfo]; ok {
		if comment := strings.TrimSpace(reader.Comment()); strings.HasPrefix(comment, "{") {
			adapter, _ := formats.ByName(formats.NameComicBookInfo)
			record, err := adapter.Parse([]byte(comment))
			add(SourceArchiveComment, formats.NameComicBookInfo, "archive comment", record, err)
		}
	}

	// Registry order: the native sidecar wins over ComicInfo.xml.
	entries := reader.Entries()
	for _, name := range SourceArchiveFile.Formats() {
		if _, ok := enabled[name]; !ok {
			continue
		}
		adapter, _ := formats.ByName(name)
		entryName := findEntry(entries, adapter.SidecarName())
		if entryName == "" {
			continue
		}
		data, err := reader.Read(entryName)
		if err == nil {
			var record metadata.Record
			record, err = adapter.Parse(data)
			add(SourceArchiveFile, name, entryName, record, err)
			continue
		}
		add(SourceArchiveFile, name, entryName, nil, err)
	}
	return nil
}

func findEntry(entries []archive.Entry, sidecarName string) string {
	for _, entry := range entries {
		if strings.EqualFold(filepath.Base(entry.Name), sidecarName) {
			return entry.Name
		}
	}
	return ""
}

func adapterForPath(importPath string) string {
	switch strings.ToLower(filepath.Ext(importPath)) {
	case ".xml":
		return formats.NameComicInfo
	case ".json":
		return formats.NameComicboxJSON
	case ".yaml", ".yml":
		return formats.NameComicboxYAML
	}
	return ""
}
