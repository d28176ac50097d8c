package book

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"panelbox/internal/config"
	"panelbox/internal/logging"
	"panelbox/internal/metadata"
)

const testComicInfo = `<?xml version="1.0" encoding="UTF-8"?>
<ComicInfo>
  <Title>The Origin</Title>
  <Series>Blackhawk</Series>
  <Number>50</Number>
  <Month>5</Month>
  <Writer>Will Eisner</Writer>
  <Notes>Tagged with comictagger 1.5.0 on 2020-01-01 10:00:00 using info from Comic Vine [Issue ID 145269]</Notes>
</ComicInfo>`

const testCBIComment = `{
  "appID": "ComicBookLover/888",
  "ComicBookInfo/1.0": {
    "title": "Stale Title",
    "publisher": "Quality Comics",
    "numberOfIssues": 107
  }
}`

func newTestArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Blackhawk v2 #050 (1944).cbz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	if err := w.SetComment(testCBIComment); err != nil {
		t.Fatal(err)
	}
	pages := []string{"p00.jpg", "p01.jpg", "p02.jpg", "p03.jpg"}
	for i, name := range pages {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write(make([]byte, 10*(i+1))); err != nil {
			t.Fatal(err)
		}
	}
	entry, err := w.Create("ComicInfo.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entry.Write([]byte(testComicInfo)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestBook(t *testing.T, cfg *config.Config) *Book {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	return New(cfg, logging.NewNop(), newTestArchive(t))
}

func TestSourcesDiscoveredInPrecedenceOrder(t *testing.T) {
	bk := newTestBook(t, nil)
	sources, err := bk.Sources()
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected filename, comment, and sidecar sources, got %d: %+v", len(sources), sources)
	}
	order := []Source{SourceFilename, SourceArchiveComment, SourceArchiveFile}
	for i, want := range order {
		if sources[i].Source != want {
			t.Fatalf("source %d = %s, want %s", i, sources[i].Source.Label(), want.Label())
		}
	}
}

func TestMergedPrecedence(t *testing.T) {
	bk := newTestBook(t, nil)
	merged, err := bk.Merged()
	if err != nil {
		t.Fatal(err)
	}

	// The in-archive sidecar outranks the comment, which outranks the
	// file name.
	if merged.String(metadata.TitleKey) != "The Origin" {
		t.Fatalf("title = %q", merged.String(metadata.TitleKey))
	}
	// Fields only one source knows all survive an additive fold.
	if merged.String(metadata.PublisherKey) != "Quality Comics" {
		t.Fatalf("publisher = %q", merged.String(metadata.PublisherKey))
	}
	if volume, _ := merged.Int(metadata.VolumeKey); volume != 2 {
		t.Fatalf("volume = %d", volume)
	}
	if year, _ := merged.Sub(metadata.DateKey).Int(metadata.YearKey); year != 1944 {
		t.Fatalf("year = %d", year)
	}
	if count, _ := merged.Int(metadata.IssueCountKey); count != 107 {
		t.Fatalf("issue count = %d", count)
	}
}

func TestMetadataDerivesComputedFields(t *testing.T) {
	bk := newTestBook(t, nil)
	record, err := bk.Metadata()
	if err != nil {
		t.Fatal(err)
	}

	if count, _ := record.Int(metadata.PageCountKey); count != 4 {
		t.Fatalf("page count = %d, want real image count", count)
	}
	pages := record.PagesAt()
	if pages[0].PageType != metadata.PageTypeFrontCover {
		t.Fatalf("page 0 = %+v", pages[0])
	}
	if pages[3].Size != 40 {
		t.Fatalf("page 3 = %+v", pages[3])
	}
	if number, ok := record.IssueNumber(); !ok || number != 50 {
		t.Fatalf("issue number = %v", number)
	}
	id := record.IdentifiersAt()["comicvine"]
	if id.IDKey != "145269" {
		t.Fatalf("identifiers = %+v", record.IdentifiersAt())
	}
	if record.String(metadata.WebKey) == "" {
		t.Fatal("web link not synthesized")
	}
	if record.String(metadata.TaggerKey) != "comictagger 1.5.0" {
		t.Fatalf("tagger = %q", record.String(metadata.TaggerKey))
	}
	cover, ok := record.CoverDate()
	if !ok || cover.Year() != 1944 || int(cover.Month()) != 5 {
		t.Fatalf("cover date = %v", cover)
	}
}

func TestAddSourceInvalidatesCaches(t *testing.T) {
	bk := newTestBook(t, nil)
	before, err := bk.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if before.String(metadata.SeriesKey) != "Blackhawk" {
		t.Fatalf("series = %q", before.String(metadata.SeriesKey))
	}

	bk.AddSource(metadata.Record{
		metadata.SeriesKey: "Black Hawk",
		metadata.TagsKey:   metadata.NewStringSet("golden-age"),
	})

	after, err := bk.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if after.String(metadata.SeriesKey) != "Black Hawk" {
		t.Fatalf("added source did not win: %q", after.String(metadata.SeriesKey))
	}
	if !after.Set(metadata.TagsKey).Contains("golden-age") {
		t.Fatal("added tags lost")
	}
}

func TestWriteStampsAndRewritesArchive(t *testing.T) {
	cfg := config.Default()
	cfg.Formats.Write = []string{"comicinfo", "comicbox-json", "comicbookinfo"}
	cfg.Stamping.Tagger = "panelbox test"

	bk := newTestBook(t, cfg)
	if err := bk.Write(); err != nil {
		t.Fatal(err)
	}

	reread := New(config.Default(), logging.NewNop(), bk.Path())
	record, err := reread.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if record.String(metadata.SeriesKey) != "Blackhawk" {
		t.Fatalf("series lost on rewrite: %q", record.String(metadata.SeriesKey))
	}
	if record.String(metadata.TaggerKey) != "panelbox test" {
		t.Fatalf("tagger = %q", record.String(metadata.TaggerKey))
	}
	if record.IdentifiersAt()["comicvine"].IDKey != "145269" {
		t.Fatalf("identifiers lost: %+v", record.IdentifiersAt())
	}
	if count, _ := record.Int(metadata.PageCountKey); count != 4 {
		t.Fatalf("pages lost: %d", count)
	}

	sources, err := reread.Sources()
	if err != nil {
		t.Fatal(err)
	}
	var native bool
	for _, source := range sources {
		if source.Format == "comicbox-json" {
			native = true
		}
	}
	if !native {
		t.Fatal("native sidecar not written into the archive")
	}
}

func TestThreeSourceScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Foo #001 (1999).cbz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	for i := 0; i < 10; i++ {
		entry, err := w.Create(fmt.Sprintf("p%02d.jpg", i))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write([]byte{0xff, 0xd8}); err != nil {
			t.Fatal(err)
		}
	}
	entry, err := w.Create("ComicInfo.xml")
	if err != nil {
		t.Fatal(err)
	}
	sidecar := `<?xml version="1.0"?><ComicInfo><Writer>Alice</Writer><Genre>SciFi</Genre></ComicInfo>`
	if _, err := entry.Write([]byte(sidecar)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Formats.Write = []string{"comicbox-json"}
	cfg.Stamping.Tagger = "panelbox test"
	bk := New(cfg, logging.NewNop(), path)
	bk.AddSource(metadata.Record{
		metadata.IdentifiersKey: metadata.Identifiers{
			"comicvine": {IDType: "issue", IDKey: "123"},
		},
	})

	record, err := bk.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if record.String(metadata.SeriesKey) != "Foo" {
		t.Fatalf("series = %q", record.String(metadata.SeriesKey))
	}
	if record.IssueName() != "1" {
		t.Fatalf("issue = %q", record.IssueName())
	}
	if year, _ := record.Sub(metadata.DateKey).Int(metadata.YearKey); year != 1999 {
		t.Fatalf("year = %d", year)
	}
	if !record.CreditsAt()["Alice"].Contains("Writer") {
		t.Fatalf("credits = %v", record.CreditsAt())
	}
	if !record.Set(metadata.GenresKey).Contains("SciFi") {
		t.Fatalf("genres = %v", record.Set(metadata.GenresKey).Sorted())
	}
	if count, _ := record.Int(metadata.PageCountKey); count != 10 {
		t.Fatalf("page count = %d", count)
	}
	if record.String(metadata.WebKey) != "https://comicvine.gamespot.com/c/4000-123/" {
		t.Fatalf("web = %q", record.String(metadata.WebKey))
	}
	if record.String(metadata.TaggerKey) != "panelbox test" {
		t.Fatalf("tagger = %q", record.String(metadata.TaggerKey))
	}
	if record.String(metadata.NotesKey) == "" {
		t.Fatal("notes not stamped")
	}
	if _, ok := record.Time(metadata.UpdatedAtKey); !ok {
		t.Fatal("updated_at not stamped")
	}
}

func TestWriteWithoutFormatsFails(t *testing.T) {
	bk := newTestBook(t, nil)
	if err := bk.Write(); err == nil {
		t.Fatal("write without formats must fail")
	}
}
