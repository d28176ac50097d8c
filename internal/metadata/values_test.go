package metadata

import (
	"testing"
	"time"
)

func TestFormatIssueNumber(t *testing.T) {
	cases := []struct {
		number float64
		want   string
	}{
		{5, "5"},
		{5.0, "5"},
		{12.1, "12.1"},
		{0.5, "0.5"},
		{100, "100"},
	}
	for _, tc := range cases {
		if got := FormatIssueNumber(tc.number); got != tc.want {
			t.Errorf("FormatIssueNumber(%v) = %q, want %q", tc.number, got, tc.want)
		}
	}
}

func TestStringSetAddTrims(t *testing.T) {
	s := NewStringSet(" Batman ", "", "Robin")
	if len(s) != 2 {
		t.Fatalf("expected 2 members, got %d", len(s))
	}
	if !s.Contains("Batman") {
		t.Fatal("expected trimmed member Batman")
	}
}

func TestCreditsAddCaseInsensitive(t *testing.T) {
	c := Credits{}
	c.Add("Jack Kirby", "Penciller")
	c.Add("jack kirby", "Writer")

	if len(c) != 1 {
		t.Fatalf("expected one person, got %d: %v", len(c), c.People())
	}
	roles := c["Jack Kirby"]
	if !roles.Contains("Penciller") || !roles.Contains("Writer") {
		t.Fatalf("roles not merged: %v", roles.Sorted())
	}
}

func TestPageOverlay(t *testing.T) {
	base := Page{Size: 1024}
	got := base.Overlay(Page{PageType: PageTypeFrontCover, Bookmark: true})
	if got.Size != 1024 || got.PageType != PageTypeFrontCover || !got.Bookmark {
		t.Fatalf("overlay lost attributes: %+v", got)
	}

	got = base.Overlay(Page{Size: 2048})
	if got.Size != 2048 {
		t.Fatalf("set size should win, got %d", got.Size)
	}
}

func TestSortReprintsDedupes(t *testing.T) {
	reprints := []Reprint{
		{Series: "Showcase", Volume: 1, Issue: "4"},
		{Series: "Adventure Comics", Issue: "247"},
		{Series: "Showcase", Volume: 1, Issue: "4"},
	}
	got := SortReprints(reprints)
	if len(got) != 2 {
		t.Fatalf("expected 2 reprints after dedupe, got %d", len(got))
	}
	if got[0].Series != "Adventure Comics" {
		t.Fatalf("expected sorted order, got %q first", got[0].Series)
	}
}

func TestRecordCloneIsDeep(t *testing.T) {
	record := Record{
		TagsKey:  NewStringSet("a"),
		IssueKey: Record{IssueNameKey: "5"},
	}
	clone := record.Clone()
	clone.Set(TagsKey).Add("b")
	clone.Sub(IssueKey)[IssueNameKey] = "6"

	if record.Set(TagsKey).Contains("b") {
		t.Fatal("clone shares tag set with original")
	}
	if record.IssueName() != "5" {
		t.Fatalf("clone shares issue sub-record, got %q", record.IssueName())
	}
}

func TestIsEmpty(t *testing.T) {
	empties := []any{nil, "", StringSet{}, Pages{}, Identifiers{}, Credits{},
		[]string{}, []Reprint{}, Record{}, time.Time{}}
	for _, v := range empties {
		if !IsEmpty(v) {
			t.Errorf("IsEmpty(%#v) = false, want true", v)
		}
	}
	if IsEmpty(0) || IsEmpty(false) {
		t.Fatal("zero scalars are still information")
	}
}
