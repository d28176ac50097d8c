package book

import (
	"panelbox/internal/formats"
	"panelbox/internal/metadata"
)

// Source identifies where a metadata record came from. Declaration order is
// precedence order: later sources override earlier ones during the merge
// fold.
type Source int

const (
	// SourceConfig is metadata baked into the configuration file.
	SourceConfig Source = iota
	// SourceFilename is metadata tokenized from the archive file name.
	SourceFilename
	// SourceArchiveComment is ComicBookInfo JSON in the zip comment.
	SourceArchiveComment
	// SourceArchiveFile is a metadata sidecar inside the archive.
	SourceArchiveFile
	// SourceImport is an external metadata file named in configuration.
	SourceImport
	// SourceCLI is a metadata fragment supplied on the command line.
	SourceCLI
	// SourceAdded is a record attached programmatically at runtime.
	SourceAdded
)

// StorageClass tells where in or around the archive a source's payload
// lives.
type StorageClass int

const (
	// StorageNone marks sources that do not live in the archive at all.
	StorageNone StorageClass = iota
	// StorageFilename is the archive's own file name.
	StorageFilename
	// StorageComment is the container comment.
	StorageComment
	// StorageEntry is a file stored inside the archive.
	StorageEntry
)

// sourceInfo carries one source's registry attributes. Format lists are
// lowest precedence first; within a source a later format masks an
// earlier one.
type sourceInfo struct {
	label        string
	formats      []string
	storage      StorageClass
	configurable bool
	writable     bool
}

var sourceTable = map[Source]sourceInfo{
	SourceConfig: {
		label:        "config",
		formats:      []string{formats.NameComicboxYAML},
		configurable: true,
	},
	SourceFilename: {
		label:        "filename",
		formats:      []string{formats.NameFilename},
		storage:      StorageFilename,
		configurable: true,
		writable:     true,
	},
	SourceArchiveComment: {
		label:        "archive comment",
		formats:      []string{formats.NameComicBookInfo},
		storage:      StorageComment,
		configurable: true,
		writable:     true,
	},
	SourceArchiveFile: {
		label: "archive file",
		formats: []string{
			formats.NameComicInfo,
			formats.NameComicboxJSON,
			formats.NameComicboxYAML,
		},
		storage:      StorageEntry,
		configurable: true,
		writable:     true,
	},
	SourceImport: {
		label: "imported file",
		formats: []string{
			formats.NameComicInfo,
			formats.NameComicboxJSON,
			formats.NameComicboxYAML,
		},
		configurable: true,
	},
	SourceCLI: {
		label:        "command line",
		formats:      []string{formats.NameComicboxYAML},
		configurable: true,
	},
	SourceAdded: {
		label: "added",
	},
}

// Label returns the human-readable source name.
func (s Source) Label() string {
	if info, ok := sourceTable[s]; ok {
		return info.label
	}
	return "unknown"
}

// Formats returns the formats a source may carry, lowest precedence first.
func (s Source) Formats() []string {
	info := sourceTable[s]
	out := make([]string, len(info.formats))
	copy(out, info.formats)
	return out
}

// Storage returns the source's archive-storage classification.
func (s Source) Storage() StorageClass {
	return sourceTable[s].storage
}

// Configurable reports whether configuration can feed or toggle the source.
func (s Source) Configurable() bool {
	return sourceTable[s].configurable
}

// Writable reports whether a write operation can target the source's
// storage.
func (s Source) Writable() bool {
	return sourceTable[s].writable
}

// SourceRecord pairs one parsed record with its provenance.
type SourceRecord struct {
	Source Source
	Format string
	Origin string
	Record metadata.Record
}
