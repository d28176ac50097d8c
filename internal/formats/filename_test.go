package formats

import (
	"testing"

	"panelbox/internal/metadata"
)

func TestFilenameAdapterParse(t *testing.T) {
	adapter, err := ByName(NameFilename)
	if err != nil {
		t.Fatal(err)
	}
	record, err := adapter.Parse([]byte("/comics/Blackhawk v2 #050 (1944) - The Origin.cbz"))
	if err != nil {
		t.Fatal(err)
	}

	if record.String(metadata.SeriesKey) != "Blackhawk" {
		t.Fatalf("series = %q", record.String(metadata.SeriesKey))
	}
	if record.String(metadata.TitleKey) != "The Origin" {
		t.Fatalf("title = %q", record.String(metadata.TitleKey))
	}
	if record.IssueName() != "50" {
		t.Fatalf("issue = %q", record.IssueName())
	}
	if volume, _ := record.Int(metadata.VolumeKey); volume != 2 {
		t.Fatalf("volume = %d", volume)
	}
	if year, _ := record.Sub(metadata.DateKey).Int(metadata.YearKey); year != 1944 {
		t.Fatalf("year = %d", year)
	}
}

func TestFilenameAdapterRender(t *testing.T) {
	adapter, _ := ByName(NameFilename)
	record := metadata.Record{
		metadata.SeriesKey: "Blackhawk",
		metadata.VolumeKey: 2,
		metadata.IssueKey:  metadata.Record{metadata.IssueNameKey: "50"},
		metadata.DateKey:   metadata.Record{metadata.YearKey: 1944},
	}
	data, err := adapter.Render(record)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Blackhawk v2 #050 (1944).cbz" {
		t.Fatalf("rendered = %q", data)
	}
}
