package formats

import (
	"fmt"

	"panelbox/internal/metadata"
)

// Canonical adapter names, as used in configuration.
const (
	NameComicboxYAML  = "comicbox-yaml"
	NameComicboxJSON  = "comicbox-json"
	NameComicInfo     = "comicinfo"
	NameComicBookInfo = "comicbookinfo"
	NameFilename      = "filename"
)

// Adapter translates one tagging format to and from canonical records.
type Adapter interface {
	// Name is the canonical adapter name.
	Name() string
	// SidecarName is the in-archive file this format lives in. Empty means
	// the format is not a sidecar (the archive comment or the file name).
	SidecarName() string
	Parse(data []byte) (metadata.Record, error)
	Render(record metadata.Record) ([]byte, error)
}

var registry = map[string]Adapter{
	NameComicboxYAML:  nativeAdapter{yaml: true},
	NameComicboxJSON:  nativeAdapter{},
	NameComicInfo:     comicInfoAdapter{},
	NameComicBookInfo: comicBookInfoAdapter{},
	NameFilename:      filenameAdapter{},
}

// ByName returns the adapter for a canonical name.
func ByName(name string) (Adapter, error) {
	adapter, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown metadata format %q", name)
	}
	return adapter, nil
}

// Names returns every registered adapter name.
func Names() []string {
	return []string{
		NameComicboxYAML, NameComicboxJSON, NameComicInfo,
		NameComicBookInfo, NameFilename,
	}
}
