package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if len(cfg.Formats.Read) == 0 {
		t.Fatal("expected default read formats")
	}
	if len(cfg.Formats.Write) != 0 {
		t.Fatal("writing must be opt-in")
	}
	if !cfg.ComputePages {
		t.Fatal("page recomputation should default on")
	}
	if !cfg.Stamping.StampNotes {
		t.Fatal("notes stamping should default on")
	}
	if cfg.Writing() {
		t.Fatal("default config must not be in writing mode")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, resolved, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if resolved == "" {
		t.Fatal("resolved path missing")
	}
	if cfg.Stamping.Tagger == "" {
		t.Fatal("default tagger missing")
	}
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panelbox.toml")
	content := `
compute_pages = false
delete_keys = ["tagger", "date.month"]

[formats]
read = ["ComicInfo", "comicinfo", "filename"]
write = ["comicinfo"]

[stamping]
tagger = "panelbox 1.0"
stamp = true

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("file not reported as existing")
	}
	if cfg.ComputePages {
		t.Fatal("compute_pages override lost")
	}
	want := []string{"comicinfo", "filename"}
	if len(cfg.Formats.Read) != len(want) {
		t.Fatalf("read formats not normalized: %v", cfg.Formats.Read)
	}
	for i, name := range want {
		if cfg.Formats.Read[i] != name {
			t.Fatalf("read formats = %v, want %v", cfg.Formats.Read, want)
		}
	}
	if !cfg.Writing() {
		t.Fatal("stamp = true must imply writing mode")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestEnvOverridesTagger(t *testing.T) {
	t.Setenv("PANELBOX_TAGGER", "ci-tagger")
	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stamping.Tagger != "ci-tagger" {
		t.Fatalf("tagger = %q", cfg.Stamping.Tagger)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Formats.Read = []string{"cbml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown format accepted")
	}

	cfg = Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log format accepted")
	}

	cfg = Default()
	cfg.DeleteKeys = []string{"date.month.extra"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("deep delete key accepted")
	}
}
