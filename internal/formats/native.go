package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"panelbox/internal/metadata"
)

// nativeDoc is the panelbox sidecar layout, shared by the YAML and JSON
// renditions.
type nativeDoc struct {
	AppID    string       `json:"appID,omitempty" yaml:"appID,omitempty"`
	Metadata nativeRecord `json:"panelbox" yaml:"panelbox"`
}

type nativeRecord struct {
	AgeRating      string                         `json:"age_rating,omitempty" yaml:"age_rating,omitempty"`
	Characters     []string                       `json:"characters,omitempty" yaml:"characters,omitempty"`
	Country        string                         `json:"country,omitempty" yaml:"country,omitempty"`
	Credits        map[string][]string            `json:"credits,omitempty" yaml:"credits,omitempty"`
	Date           *nativeDate                    `json:"date,omitempty" yaml:"date,omitempty"`
	Genres         []string                       `json:"genres,omitempty" yaml:"genres,omitempty"`
	Identifiers    map[string]metadata.Identifier `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	Imprint        string                         `json:"imprint,omitempty" yaml:"imprint,omitempty"`
	Issue          *nativeIssue                   `json:"issue,omitempty" yaml:"issue,omitempty"`
	IssueCount     int                            `json:"issue_count,omitempty" yaml:"issue_count,omitempty"`
	Language       string                         `json:"language,omitempty" yaml:"language,omitempty"`
	Locations      []string                       `json:"locations,omitempty" yaml:"locations,omitempty"`
	Notes          string                         `json:"notes,omitempty" yaml:"notes,omitempty"`
	OriginalFormat string                         `json:"original_format,omitempty" yaml:"original_format,omitempty"`
	PageCount      *int                           `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	Pages          map[int]metadata.Page          `json:"pages,omitempty" yaml:"pages,omitempty"`
	Publisher      string                         `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Reprints       []metadata.Reprint             `json:"reprints,omitempty" yaml:"reprints,omitempty"`
	ScanInfo       string                         `json:"scan_info,omitempty" yaml:"scan_info,omitempty"`
	Series         string                         `json:"series,omitempty" yaml:"series,omitempty"`
	Stories        []string                       `json:"stories,omitempty" yaml:"stories,omitempty"`
	Summary        string                         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tagger         string                         `json:"tagger,omitempty" yaml:"tagger,omitempty"`
	Tags           []string                       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Teams          []string                       `json:"teams,omitempty" yaml:"teams,omitempty"`
	Title          string                         `json:"title,omitempty" yaml:"title,omitempty"`
	UpdatedAt      *time.Time                     `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Volume         int                            `json:"volume,omitempty" yaml:"volume,omitempty"`
	VolumeCount    int                            `json:"volume_count,omitempty" yaml:"volume_count,omitempty"`
	Web            string                         `json:"web,omitempty" yaml:"web,omitempty"`
}

type nativeIssue struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Suffix string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

type nativeDate struct {
	CoverDate *time.Time `json:"cover_date,omitempty" yaml:"cover_date,omitempty"`
	Year      *int       `json:"year,omitempty" yaml:"year,omitempty"`
	Month     *int       `json:"month,omitempty" yaml:"month,omitempty"`
	Day       *int       `json:"day,omitempty" yaml:"day,omitempty"`
}

type nativeAdapter struct {
	yaml bool
}

func (a nativeAdapter) Name() string {
	if a.yaml {
		return NameComicboxYAML
	}
	return NameComicboxJSON
}

func (a nativeAdapter) SidecarName() string {
	if a.yaml {
		return "panelbox.yaml"
	}
	return "panelbox.json"
}

func (a nativeAdapter) Parse(data []byte) (metadata.Record, error) {
	var doc nativeDoc
	if a.yaml {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s sidecar: %w", a.Name(), err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s sidecar: %w", a.Name(), err)
		}
	}
	return doc.Metadata.toRecord(), nil
}

func (a nativeAdapter) Render(record metadata.Record) ([]byte, error) {
	doc := nativeDoc{
		AppID:    record.String(metadata.TaggerKey),
		Metadata: nativeFromRecord(record),
	}
	if a.yaml {
		return yaml.Marshal(&doc)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseFragment decodes a bare YAML mapping of canonical fields, as
// supplied on the command line, without the sidecar envelope.
func ParseFragment(data []byte) (metadata.Record, error) {
	var n nativeRecord
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse metadata fragment: %w", err)
	}
	return n.toRecord(), nil
}

func (n nativeRecord) toRecord() metadata.Record {
	record := metadata.Record{}
	setString(record, metadata.AgeRatingKey, n.AgeRating)
	setField(record, metadata.CharactersKey, n.Characters)
	setString(record, metadata.CountryKey, n.Country)
	if len(n.Credits) > 0 {
		credits := metadata.Credits{}
		for person, roles := range n.Credits {
			if len(roles) == 0 {
				credits.Add(person, "")
			}
			for _, role := range roles {
				credits.Add(person, role)
			}
		}
		record[metadata.CreditsKey] = credits
	}
	if n.Date != nil {
		date := metadata.Record{}
		if n.Date.CoverDate != nil && !n.Date.CoverDate.IsZero() {
			date[metadata.CoverDateKey] = n.Date.CoverDate.UTC()
		}
		if n.Date.Year != nil {
			date[metadata.YearKey] = *n.Date.Year
		}
		if n.Date.Month != nil {
			date[metadata.MonthKey] = *n.Date.Month
		}
		if n.Date.Day != nil {
			date[metadata.DayKey] = *n.Date.Day
		}
		if len(date) > 0 {
			record[metadata.DateKey] = date
		}
	}
	setField(record, metadata.GenresKey, n.Genres)
	if len(n.Identifiers) > 0 {
		ids := metadata.Identifiers{}
		for source, id := range n.Identifiers {
			ids[source] = id
		}
		record[metadata.IdentifiersKey] = ids
	}
	setString(record, metadata.ImprintKey, n.Imprint)
	if n.Issue != nil {
		issue := metadata.Record{}
		setString(issue, metadata.IssueNameKey, n.Issue.Name)
		if n.Issue.Number != nil {
			issue[metadata.IssueNumberKey] = *n.Issue.Number
		}
		setString(issue, metadata.IssueSuffixKey, n.Issue.Suffix)
		if len(issue) > 0 {
			record[metadata.IssueKey] = issue
		}
	}
	setInt(record, metadata.IssueCountKey, n.IssueCount)
	setString(record, metadata.LanguageKey, n.Language)
	setField(record, metadata.LocationsKey, n.Locations)
	setString(record, metadata.NotesKey, n.Notes)
	setString(record, metadata.OriginalFormatKey, n.OriginalFormat)
	if n.PageCount != nil {
		record[metadata.PageCountKey] = *n.PageCount
	}
	if len(n.Pages) > 0 {
		pages := metadata.Pages{}
		for index, page := range n.Pages {
			if index >= 0 {
				pages[index] = page
			}
		}
		record[metadata.PagesKey] = pages
	}
	setString(record, metadata.PublisherKey, n.Publisher)
	if len(n.Reprints) > 0 {
		record[metadata.ReprintsKey] = metadata.SortReprints(n.Reprints)
	}
	setString(record, metadata.ScanInfoKey, n.ScanInfo)
	setString(record, metadata.SeriesKey, n.Series)
	if len(n.Stories) > 0 {
		record[metadata.StoriesKey] = append([]string{}, n.Stories...)
	}
	setString(record, metadata.SummaryKey, n.Summary)
	setString(record, metadata.TaggerKey, n.Tagger)
	setField(record, metadata.TagsKey, n.Tags)
	setField(record, metadata.TeamsKey, n.Teams)
	setString(record, metadata.TitleKey, n.Title)
	if n.UpdatedAt != nil && !n.UpdatedAt.IsZero() {
		record[metadata.UpdatedAtKey] = n.UpdatedAt.UTC()
	}
	setInt(record, metadata.VolumeKey, n.Volume)
	setInt(record, metadata.VolumeCountKey, n.VolumeCount)
	setString(record, metadata.WebKey, n.Web)
	return record
}

func nativeFromRecord(record metadata.Record) nativeRecord {
	n := nativeRecord{
		AgeRating:      record.String(metadata.AgeRatingKey),
		Characters:     record.Set(metadata.CharactersKey).Sorted(),
		Country:        record.String(metadata.CountryKey),
		Genres:         record.Set(metadata.GenresKey).Sorted(),
		Imprint:        record.String(metadata.ImprintKey),
		IssueCount:     recordInt(record, metadata.IssueCountKey),
		Language:       record.String(metadata.LanguageKey),
		Locations:      record.Set(metadata.LocationsKey).Sorted(),
		Notes:          record.String(metadata.NotesKey),
		OriginalFormat: record.String(metadata.OriginalFormatKey),
		Publisher:      record.String(metadata.PublisherKey),
		ScanInfo:       record.String(metadata.ScanInfoKey),
		Series:         record.String(metadata.SeriesKey),
		Stories:        record.List(metadata.StoriesKey),
		Summary:        record.String(metadata.SummaryKey),
		Tagger:         record.String(metadata.TaggerKey),
		Tags:           record.Set(metadata.TagsKey).Sorted(),
		Teams:          record.Set(metadata.TeamsKey).Sorted(),
		Title:          record.String(metadata.TitleKey),
		Volume:         recordInt(record, metadata.VolumeKey),
		VolumeCount:    recordInt(record, metadata.VolumeCountKey),
		Web:            record.String(metadata.WebKey),
	}
	if credits := record.CreditsAt(); len(credits) > 0 {
		n.Credits = make(map[string][]string, len(credits))
		for person, roles := range credits {
			n.Credits[person] = roles.Sorted()
		}
	}
	if date := record.Sub(metadata.DateKey); len(date) > 0 {
		nd := &nativeDate{}
		if cover, ok := date.Time(metadata.CoverDateKey); ok && !cover.IsZero() {
			utc := cover.UTC()
			nd.CoverDate = &utc
		}
		if year, ok := date.Int(metadata.YearKey); ok {
			nd.Year = &year
		}
		if month, ok := date.Int(metadata.MonthKey); ok {
			nd.Month = &month
		}
		if day, ok := date.Int(metadata.DayKey); ok {
			nd.Day = &day
		}
		n.Date = nd
	}
	if ids := record.IdentifiersAt(); len(ids) > 0 {
		n.Identifiers = make(map[string]metadata.Identifier, len(ids))
		for source, id := range ids {
			n.Identifiers[source] = id
		}
	}
	if issue := record.Sub(metadata.IssueKey); len(issue) > 0 {
		ni := &nativeIssue{
			Name:   issue.String(metadata.IssueNameKey),
			Suffix: issue.String(metadata.IssueSuffixKey),
		}
		if number, ok := issue.Float(metadata.IssueNumberKey); ok {
			ni.Number = &number
		}
		n.Issue = ni
	}
	if count, ok := record.Int(metadata.PageCountKey); ok {
		n.PageCount = &count
	}
	if pages := record.PagesAt(); len(pages) > 0 {
		n.Pages = make(map[int]metadata.Page, len(pages))
		for index, page := range pages {
			n.Pages[index] = page
		}
	}
	if reprints := record.ReprintsAt(); len(reprints) > 0 {
		n.Reprints = metadata.SortReprints(reprints)
	}
	if updated, ok := record.Time(metadata.UpdatedAtKey); ok && !updated.IsZero() {
		utc := updated.UTC()
		n.UpdatedAt = &utc
	}
	return n
}
