package formats

import (
	"encoding/json"
	"testing"

	"panelbox/internal/metadata"
)

const sampleCBI = `{
  "appID": "ComicBookLover/888",
  "lastModified": "2009-10-25 14:51:31 +0000",
  "ComicBookInfo/1.0": {
    "series": "Watchmen",
    "title": "At Midnight, All the Agents",
    "publisher": "DC Comics",
    "publicationMonth": 9,
    "publicationYear": 1986,
    "issue": 1,
    "numberOfIssues": 12,
    "language": "English",
    "credits": [
      {"person": "Moore, Alan", "role": "Writer", "primary": true},
      {"person": "Gibbons, Dave", "role": "Artist"}
    ],
    "tags": ["Rorschach", "Ozymandias"],
    "comments": "Tales of the Black Freighter"
  }
}`

func TestComicBookInfoParse(t *testing.T) {
	adapter, err := ByName(NameComicBookInfo)
	if err != nil {
		t.Fatal(err)
	}
	record, err := adapter.Parse([]byte(sampleCBI))
	if err != nil {
		t.Fatal(err)
	}

	if record.String(metadata.SeriesKey) != "Watchmen" {
		t.Fatalf("series = %q", record.String(metadata.SeriesKey))
	}
	if record.String(metadata.TaggerKey) != "ComicBookLover/888" {
		t.Fatalf("tagger = %q", record.String(metadata.TaggerKey))
	}
	if record.IssueName() != "1" {
		t.Fatalf("issue = %q", record.IssueName())
	}
	if count, _ := record.Int(metadata.IssueCountKey); count != 12 {
		t.Fatalf("issue count = %d", count)
	}
	date := record.Sub(metadata.DateKey)
	if month, _ := date.Int(metadata.MonthKey); month != 9 {
		t.Fatalf("month = %d", month)
	}
	if !record.CreditsAt()["Moore, Alan"].Contains("Writer") {
		t.Fatalf("credits = %v", record.CreditsAt())
	}
	if !record.Set(metadata.TagsKey).Contains("Rorschach") {
		t.Fatal("tags lost")
	}
	if record.String(metadata.SummaryKey) != "Tales of the Black Freighter" {
		t.Fatal("comments lost")
	}
	if _, ok := record.Time(metadata.UpdatedAtKey); !ok {
		t.Fatal("lastModified lost")
	}
}

func TestComicBookInfoRenderKeepsStringIssues(t *testing.T) {
	adapter, _ := ByName(NameComicBookInfo)
	record := metadata.Record{
		metadata.SeriesKey: "Uncanny",
		metadata.IssueKey:  metadata.Record{metadata.IssueNameKey: "12.1AU"},
	}
	data, err := adapter.Render(record)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("invalid JSON: %s", data)
	}
	reparsed, err := adapter.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if reparsed.IssueName() != "12.1AU" {
		t.Fatalf("issue = %q", reparsed.IssueName())
	}
}

func TestComicBookInfoHandlesMissingPayload(t *testing.T) {
	adapter, _ := ByName(NameComicBookInfo)
	record, err := adapter.Parse([]byte(`{"appID":"other-tool"}`))
	if err != nil {
		t.Fatal(err)
	}
	if record.String(metadata.TaggerKey) != "other-tool" {
		t.Fatalf("tagger = %q", record.String(metadata.TaggerKey))
	}
}
