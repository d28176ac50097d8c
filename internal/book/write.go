package book

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"panelbox/internal/archive"
	"panelbox/internal/formats"
)

// Write renders every configured write format back into the archive,
// replacing the previous sidecars and comment atomically. When the
// filename format is configured the archive is also renamed to its
// preferred name. All cached views are dropped afterwards so the next
// read reflects what was written.
func (b *Book) Write() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.cfg.Formats.Write) == 0 {
		return errors.New("no write formats configured")
	}
	if err := b.computeLocked(); err != nil {
		return err
	}
	record := b.derived

	sidecars := make(map[string][]byte)
	comment := ""
	rename := ""
	for _, name := range b.cfg.Formats.Write {
		adapter, err := formats.ByName(name)
		if err != nil {
			return err
		}
		data, err := adapter.Render(record)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		switch name {
		case formats.NameComicBookInfo:
			comment = string(data)
		case formats.NameFilename:
			rename = string(data)
		default:
			sidecars[adapter.SidecarName()] = data
		}
	}

	if len(sidecars) > 0 || comment != "" {
		if err := archive.Rewrite(b.path, comment, sidecars); err != nil {
			return err
		}
	}
	if rename != "" && rename != filepath.Base(b.path) {
		target := filepath.Join(filepath.Dir(b.path), rename)
		if err := os.Rename(b.path, target); err != nil {
			return fmt.Errorf("rename archive to %s: %w", rename, err)
		}
		b.logger.Info("renamed archive",
			"from", filepath.Base(b.path),
			"to", rename)
		b.path = target
	}

	b.logger.Info("wrote metadata",
		"path", b.path,
		"formats", strings.Join(b.cfg.Formats.Write, ","))
	b.invalidate()
	return nil
}
