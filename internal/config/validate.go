package config

import (
	"fmt"
	"strings"
)

var knownFormats = map[string]struct{}{
	"comicbox-yaml": {},
	"comicbox-json": {},
	"comicinfo":     {},
	"comicbookinfo": {},
	"filename":      {},
}

var knownLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	for _, name := range append(append([]string{}, c.Formats.Read...), c.Formats.Write...) {
		if _, ok := knownFormats[name]; !ok {
			return fmt.Errorf("unknown metadata format %q", name)
		}
	}
	if _, ok := knownLogFormats[strings.ToLower(c.Logging.Format)]; !ok && c.Logging.Format != "" {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	for _, key := range c.DeleteKeys {
		if strings.Count(key, ".") > 1 {
			return fmt.Errorf("delete key %q: at most one nesting level is supported", key)
		}
	}
	return nil
}

func defaultTagger() string {
	return "panelbox " + Version
}

// Version is the tool identity stamped into notes; overridden at build
// time via -ldflags.
var Version = "dev"
