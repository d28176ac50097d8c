package formats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"panelbox/internal/metadata"
)

// ComicBookInfo lives in the zip archive comment, not a sidecar file.
// The payload sits under a versioned key beside bookkeeping fields.
type comicBookInfoDoc struct {
	AppID        string                 `json:"appID,omitempty"`
	LastModified string                 `json:"lastModified,omitempty"`
	Payload      *comicBookInfoPayload `json:"ComicBookInfo/1.0,omitempty"`
}

type comicBookInfoPayload struct {
	Series           string      `json:"series,omitempty"`
	Title            string      `json:"title,omitempty"`
	Publisher        string      `json:"publisher,omitempty"`
	PublicationMonth int         `json:"publicationMonth,omitempty"`
	PublicationYear  int         `json:"publicationYear,omitempty"`
	Issue            any         `json:"issue,omitempty"`
	NumberOfIssues   int         `json:"numberOfIssues,omitempty"`
	Volume           int         `json:"volume,omitempty"`
	NumberOfVolumes  int         `json:"numberOfVolumes,omitempty"`
	Genre            string      `json:"genre,omitempty"`
	Language         string      `json:"language,omitempty"`
	Country          string      `json:"country,omitempty"`
	Credits          []cbiCredit `json:"credits,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
	Comments         string      `json:"comments,omitempty"`
}

type cbiCredit struct {
	Person  string `json:"person,omitempty"`
	Role    string `json:"role,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

const cbiTimeLayout = "2006-01-02 15:04:05 -0700"

type comicBookInfoAdapter struct{}

func (comicBookInfoAdapter) Name() string        { return NameComicBookInfo }
func (comicBookInfoAdapter) SidecarName() string { return "" }

func (comicBookInfoAdapter) Parse(data []byte) (metadata.Record, error) {
	var doc comicBookInfoDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse archive comment: %w", err)
	}
	record := metadata.Record{}
	setString(record, metadata.TaggerKey, doc.AppID)
	if updated := parseCBITime(doc.LastModified); !updated.IsZero() {
		record[metadata.UpdatedAtKey] = updated
	}
	payload := doc.Payload
	if payload == nil {
		return record, nil
	}
	setString(record, metadata.SeriesKey, payload.Series)
	setString(record, metadata.TitleKey, payload.Title)
	setString(record, metadata.PublisherKey, payload.Publisher)
	date := metadata.Record{}
	if payload.PublicationYear != 0 {
		date[metadata.YearKey] = payload.PublicationYear
	}
	if payload.PublicationMonth != 0 {
		date[metadata.MonthKey] = payload.PublicationMonth
	}
	if len(date) > 0 {
		record[metadata.DateKey] = date
	}
	if issue := cbiIssueString(payload.Issue); issue != "" {
		record[metadata.IssueKey] = metadata.Record{metadata.IssueNameKey: issue}
	}
	setInt(record, metadata.IssueCountKey, payload.NumberOfIssues)
	setInt(record, metadata.VolumeKey, payload.Volume)
	setInt(record, metadata.VolumeCountKey, payload.NumberOfVolumes)
	setField(record, metadata.GenresKey, splitCommaList(payload.Genre))
	setString(record, metadata.LanguageKey, payload.Language)
	setString(record, metadata.CountryKey, payload.Country)
	if len(payload.Credits) > 0 {
		credits := metadata.Credits{}
		for _, credit := range payload.Credits {
			credits.Add(credit.Person, credit.Role)
		}
		if len(credits) > 0 {
			record[metadata.CreditsKey] = credits
		}
	}
	setField(record, metadata.TagsKey, payload.Tags)
	setString(record, metadata.SummaryKey, payload.Comments)
	return record, nil
}

func (comicBookInfoAdapter) Render(record metadata.Record) ([]byte, error) {
	payload := &comicBookInfoPayload{
		Series:          record.String(metadata.SeriesKey),
		Title:           record.String(metadata.TitleKey),
		Publisher:       record.String(metadata.PublisherKey),
		NumberOfIssues:  recordInt(record, metadata.IssueCountKey),
		Volume:          recordInt(record, metadata.VolumeKey),
		NumberOfVolumes: recordInt(record, metadata.VolumeCountKey),
		Genre:           joinSet(record, metadata.GenresKey),
		Language:        record.String(metadata.LanguageKey),
		Country:         record.String(metadata.CountryKey),
		Tags:            record.Set(metadata.TagsKey).Sorted(),
		Comments:        record.String(metadata.SummaryKey),
	}
	if issue := record.IssueName(); issue != "" {
		payload.Issue = issue
		if number, err := strconv.ParseFloat(issue, 64); err == nil {
			payload.Issue = number
		}
	}
	if date := record.Sub(metadata.DateKey); len(date) > 0 {
		payload.PublicationYear, _ = date.Int(metadata.YearKey)
		payload.PublicationMonth, _ = date.Int(metadata.MonthKey)
	}
	if credits := record.CreditsAt(); len(credits) > 0 {
		for _, person := range credits.People() {
			roles := credits[person].Sorted()
			if len(roles) == 0 {
				payload.Credits = append(payload.Credits, cbiCredit{Person: person})
			}
			for _, role := range roles {
				payload.Credits = append(payload.Credits, cbiCredit{Person: person, Role: role})
			}
		}
	}
	doc := comicBookInfoDoc{
		AppID:   record.String(metadata.TaggerKey),
		Payload: payload,
	}
	if updated, ok := record.Time(metadata.UpdatedAtKey); ok && !updated.IsZero() {
		doc.LastModified = updated.UTC().Format(cbiTimeLayout)
	}
	return json.Marshal(&doc)
}

// cbiIssueString renders the issue value, which real files carry as either
// a JSON number or a string.
func cbiIssueString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return metadata.FormatIssueNumber(v)
	case json.Number:
		return v.String()
	}
	return ""
}

func parseCBITime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{cbiTimeLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
