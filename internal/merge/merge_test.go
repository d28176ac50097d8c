package merge

import (
	"reflect"
	"testing"

	"panelbox/internal/metadata"
)

func TestScalarLastSourceWins(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.SeriesKey: "Blackhawk"},
		metadata.Record{metadata.SeriesKey: "Black Hawk"},
	)
	if got.String(metadata.SeriesKey) != "Black Hawk" {
		t.Fatalf("series = %q, want later source to win", got.String(metadata.SeriesKey))
	}
}

func TestEmptyValuesNeverClobber(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.SeriesKey: "Blackhawk", metadata.TagsKey: metadata.NewStringSet("war")},
		metadata.Record{metadata.SeriesKey: "", metadata.TagsKey: metadata.StringSet{}},
	)
	if got.String(metadata.SeriesKey) != "Blackhawk" {
		t.Fatalf("empty string replaced series: %q", got.String(metadata.SeriesKey))
	}
	if !got.Set(metadata.TagsKey).Contains("war") {
		t.Fatal("empty set replaced tags")
	}
}

func TestSetUnion(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.CharactersKey: metadata.NewStringSet("Blackhawk", "Chop-Chop")},
		metadata.Record{metadata.CharactersKey: metadata.NewStringSet("Chop-Chop", "Olaf")},
	)
	want := []string{"Blackhawk", "Chop-Chop", "Olaf"}
	if !reflect.DeepEqual(got.Set(metadata.CharactersKey).Sorted(), want) {
		t.Fatalf("characters = %v, want %v", got.Set(metadata.CharactersKey).Sorted(), want)
	}
}

func TestTitleAlwaysReplaces(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.TitleKey: "The Origin"},
		metadata.Record{metadata.TitleKey: "Origin of the Species"},
	)
	if got.String(metadata.TitleKey) != "Origin of the Species" {
		t.Fatalf("title = %q", got.String(metadata.TitleKey))
	}
}

func TestPageIndexMerge(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.PagesKey: metadata.Pages{
			0: {Size: 1000},
			1: {Size: 2000},
		}},
		metadata.Record{metadata.PagesKey: metadata.Pages{
			0: {PageType: metadata.PageTypeFrontCover},
			2: {Bookmark: true},
		}},
	)
	pages := got.PagesAt()
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[0].Size != 1000 || pages[0].PageType != metadata.PageTypeFrontCover {
		t.Fatalf("page 0 overlay wrong: %+v", pages[0])
	}
	if !pages[2].Bookmark {
		t.Fatal("page 2 lost bookmark")
	}
}

func TestIdentifiersNeverOverwritten(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.IdentifiersKey: metadata.Identifiers{
			"comicvine": {IDKey: "145269", IDType: "issue"},
		}},
		metadata.Record{metadata.IdentifiersKey: metadata.Identifiers{
			"comicvine": {IDKey: "999999", IDType: "issue", URL: "https://comicvine.gamespot.com/c/4000-145269/"},
			"metron":    {IDKey: "12", IDType: "issue"},
		}},
	)
	ids := got.IdentifiersAt()
	if ids["comicvine"].IDKey != "145269" {
		t.Fatalf("existing identifier overwritten: %+v", ids["comicvine"])
	}
	if ids["comicvine"].URL == "" {
		t.Fatal("blank URL should be filled from the newcomer")
	}
	if ids["metron"].IDKey != "12" {
		t.Fatal("new source not added")
	}
}

func TestCreditsUnionAcrossSources(t *testing.T) {
	a := metadata.Credits{}
	a.Add("Will Eisner", "Writer")
	b := metadata.Credits{}
	b.Add("will eisner", "Penciller")

	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.CreditsKey: a},
		metadata.Record{metadata.CreditsKey: b},
	)
	credits := got.CreditsAt()
	if len(credits) != 1 {
		t.Fatalf("expected one person, got %v", credits.People())
	}
	roles := credits["Will Eisner"]
	if !roles.Contains("Writer") || !roles.Contains("Penciller") {
		t.Fatalf("roles = %v", roles.Sorted())
	}
}

func TestReprintsDedupedByCompositeKey(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.ReprintsKey: []metadata.Reprint{
			{Series: "Military Comics", Issue: "1"},
		}},
		metadata.Record{metadata.ReprintsKey: []metadata.Reprint{
			{Series: "Military Comics", Issue: "1"},
			{Series: "Modern Comics", Issue: "44"},
		}},
	)
	if len(got.ReprintsAt()) != 2 {
		t.Fatalf("reprints = %v", got.ReprintsAt())
	}
}

func TestNestedRecordsMergeKeywise(t *testing.T) {
	got := Records(metadata.Record{}, Additive,
		metadata.Record{metadata.IssueKey: metadata.Record{metadata.IssueNumberKey: 12.0}},
		metadata.Record{metadata.IssueKey: metadata.Record{metadata.IssueSuffixKey: "AU"}},
	)
	issue := got.Sub(metadata.IssueKey)
	if number, ok := issue.Float(metadata.IssueNumberKey); !ok || number != 12.0 {
		t.Fatalf("issue number lost: %v", issue)
	}
	if issue.String(metadata.IssueSuffixKey) != "AU" {
		t.Fatalf("issue suffix lost: %v", issue)
	}
}

func TestReplaceStrategySupersedes(t *testing.T) {
	got := Records(metadata.Record{}, Replace,
		metadata.Record{
			metadata.TagsKey:   metadata.NewStringSet("war", "aviation"),
			metadata.SeriesKey: "Blackhawk",
		},
		metadata.Record{
			metadata.TagsKey: metadata.NewStringSet("golden-age"),
		},
	)
	tags := got.Set(metadata.TagsKey).Sorted()
	if !reflect.DeepEqual(tags, []string{"golden-age"}) {
		t.Fatalf("replace strategy should not union sets: %v", tags)
	}
	if got.String(metadata.SeriesKey) != "Blackhawk" {
		t.Fatal("keys absent from the later source must survive")
	}
}

func TestSourceOrderIsSignificant(t *testing.T) {
	a := metadata.Record{metadata.PublisherKey: "Quality Comics"}
	b := metadata.Record{metadata.PublisherKey: "DC Comics"}

	forward := Records(metadata.Record{}, Additive, a, b)
	backward := Records(metadata.Record{}, Additive, b, a)
	if forward.String(metadata.PublisherKey) == backward.String(metadata.PublisherKey) {
		t.Fatal("expected fold order to decide scalar winners")
	}
}
