package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Formats contains which metadata formats are consumed and emitted.
type Formats struct {
	Read  []string `toml:"read"`
	Write []string `toml:"write"`
}

// Stamping contains tagger-stamp behavior for write operations.
type Stamping struct {
	Tagger     string `toml:"tagger"`
	Stamp      bool   `toml:"stamp"`
	StampNotes bool   `toml:"stamp_notes"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full panelbox configuration.
type Config struct {
	Formats  Formats  `toml:"formats"`
	Stamping Stamping `toml:"stamping"`
	Logging  Logging  `toml:"logging"`

	// ComputePages enables recomputing per-page attributes from archive
	// contents.
	ComputePages bool `toml:"compute_pages"`
	// ReplaceMetadata switches the merge fold to the replace strategy so
	// each later source fully supersedes earlier ones.
	ReplaceMetadata bool `toml:"replace_metadata"`
	// DeleteKeys lists canonical field paths ("tagger", "date.month")
	// removed from the final record.
	DeleteKeys []string `toml:"delete_keys"`
	// ImportPaths lists external metadata files read as the imported-file
	// source.
	ImportPaths []string `toml:"import_paths"`
	// Metadata holds metadata fragments baked into the configuration
	// file, parsed as native YAML fragments.
	Metadata []string `toml:"metadata"`
	// CLIMetadata holds fragments supplied with the -m flag. Never read
	// from the file; CLI fragments outrank config and archive sources.
	CLIMetadata []string `toml:"-"`
}

// Default returns the repository default configuration.
func Default() *Config {
	return &Config{
		Formats: Formats{
			Read: []string{
				"comicbox-yaml", "comicbox-json", "comicinfo",
				"comicbookinfo", "filename",
			},
		},
		Stamping: Stamping{
			Tagger:     defaultTagger(),
			StampNotes: true,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		ComputePages: true,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "panelbox", "panelbox.toml"), nil
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing file yields defaults with exists=false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	cfg = Default()
	resolved = strings.TrimSpace(path)
	if resolved == "" {
		resolved, err = DefaultPath()
		if err != nil {
			return nil, "", false, err
		}
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyEnv()
			return cfg, resolved, false, nil
		}
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, resolved, true, nil
}

func (c *Config) applyEnv() {
	if tagger := strings.TrimSpace(os.Getenv("PANELBOX_TAGGER")); tagger != "" {
		c.Stamping.Tagger = tagger
	}
}

func (c *Config) normalize() {
	c.Formats.Read = normalizeNames(c.Formats.Read)
	c.Formats.Write = normalizeNames(c.Formats.Write)
	if c.Stamping.Tagger == "" {
		c.Stamping.Tagger = defaultTagger()
	}
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Writing reports whether any write/export behavior is configured, which
// is what gates the tagger stamp.
func (c *Config) Writing() bool {
	return c.Stamping.Stamp || len(c.Formats.Write) > 0
}

// DeleteKeySet returns the delete keys as a set for O(1) checks.
func (c *Config) DeleteKeySet() map[string]struct{} {
	out := make(map[string]struct{}, len(c.DeleteKeys))
	for _, key := range c.DeleteKeys {
		key = strings.TrimSpace(key)
		if key != "" {
			out[key] = struct{}{}
		}
	}
	return out
}
