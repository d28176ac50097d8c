package formats

import (
	"encoding/xml"
	"fmt"
	"strings"

	"panelbox/internal/identifiers"
	"panelbox/internal/metadata"
)

// comicInfoXML is the ComicRack ComicInfo.xml schema, the de facto sidecar
// format almost every tagger reads.
type comicInfoXML struct {
	XMLName         xml.Name        `xml:"ComicInfo"`
	Title           string          `xml:"Title,omitempty"`
	Series          string          `xml:"Series,omitempty"`
	Number          string          `xml:"Number,omitempty"`
	Count           int             `xml:"Count,omitempty"`
	Volume          int             `xml:"Volume,omitempty"`
	StoryArc        string          `xml:"StoryArc,omitempty"`
	Summary         string          `xml:"Summary,omitempty"`
	Notes           string          `xml:"Notes,omitempty"`
	Year            int             `xml:"Year,omitempty"`
	Month           int             `xml:"Month,omitempty"`
	Day             int             `xml:"Day,omitempty"`
	Writer          string          `xml:"Writer,omitempty"`
	Penciller       string          `xml:"Penciller,omitempty"`
	Inker           string          `xml:"Inker,omitempty"`
	Colorist        string          `xml:"Colorist,omitempty"`
	Letterer        string          `xml:"Letterer,omitempty"`
	CoverArtist     string          `xml:"CoverArtist,omitempty"`
	Editor          string          `xml:"Editor,omitempty"`
	Translator      string          `xml:"Translator,omitempty"`
	Publisher       string          `xml:"Publisher,omitempty"`
	Imprint         string          `xml:"Imprint,omitempty"`
	Genre           string          `xml:"Genre,omitempty"`
	Tags            string          `xml:"Tags,omitempty"`
	Web             string          `xml:"Web,omitempty"`
	PageCount       int             `xml:"PageCount,omitempty"`
	LanguageISO     string          `xml:"LanguageISO,omitempty"`
	Format          string          `xml:"Format,omitempty"`
	AgeRating       string          `xml:"AgeRating,omitempty"`
	Characters      string          `xml:"Characters,omitempty"`
	Teams           string          `xml:"Teams,omitempty"`
	Locations       string          `xml:"Locations,omitempty"`
	ScanInformation string          `xml:"ScanInformation,omitempty"`
	GTIN            string          `xml:"GTIN,omitempty"`
	Pages           *comicInfoPages `xml:"Pages,omitempty"`
}

type comicInfoPages struct {
	Pages []comicInfoPage `xml:"Page"`
}

type comicInfoPage struct {
	Image     int    `xml:"Image,attr"`
	Type      string `xml:"Type,attr,omitempty"`
	ImageSize int64  `xml:"ImageSize,attr,omitempty"`
	Bookmark  string `xml:"Bookmark,attr,omitempty"`
}

// creditTags pairs ComicInfo credit elements with canonical role names.
var creditTags = []struct {
	role string
	get  func(*comicInfoXML) *string
}{
	{"Writer", func(x *comicInfoXML) *string { return &x.Writer }},
	{"Penciller", func(x *comicInfoXML) *string { return &x.Penciller }},
	{"Inker", func(x *comicInfoXML) *string { return &x.Inker }},
	{"Colorist", func(x *comicInfoXML) *string { return &x.Colorist }},
	{"Letterer", func(x *comicInfoXML) *string { return &x.Letterer }},
	{"CoverArtist", func(x *comicInfoXML) *string { return &x.CoverArtist }},
	{"Editor", func(x *comicInfoXML) *string { return &x.Editor }},
	{"Translator", func(x *comicInfoXML) *string { return &x.Translator }},
}

type comicInfoAdapter struct{}

func (comicInfoAdapter) Name() string        { return NameComicInfo }
func (comicInfoAdapter) SidecarName() string { return "ComicInfo.xml" }

func (comicInfoAdapter) Parse(data []byte) (metadata.Record, error) {
	var doc comicInfoXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ComicInfo.xml: %w", err)
	}
	record := metadata.Record{}
	setString(record, metadata.TitleKey, doc.Title)
	setString(record, metadata.SeriesKey, doc.Series)
	if number := strings.TrimSpace(doc.Number); number != "" {
		record[metadata.IssueKey] = metadata.Record{metadata.IssueNameKey: number}
	}
	setInt(record, metadata.IssueCountKey, doc.Count)
	setInt(record, metadata.VolumeKey, doc.Volume)
	setString(record, metadata.SummaryKey, doc.Summary)
	setString(record, metadata.NotesKey, doc.Notes)
	date := metadata.Record{}
	if doc.Year != 0 {
		date[metadata.YearKey] = doc.Year
	}
	if doc.Month != 0 {
		date[metadata.MonthKey] = doc.Month
	}
	if doc.Day != 0 {
		date[metadata.DayKey] = doc.Day
	}
	if len(date) > 0 {
		record[metadata.DateKey] = date
	}
	credits := metadata.Credits{}
	for _, tag := range creditTags {
		for _, person := range splitCommaList(*tag.get(&doc)) {
			credits.Add(person, tag.role)
		}
	}
	if len(credits) > 0 {
		record[metadata.CreditsKey] = credits
	}
	setString(record, metadata.PublisherKey, doc.Publisher)
	setString(record, metadata.ImprintKey, doc.Imprint)
	setField(record, metadata.GenresKey, splitCommaList(doc.Genre))
	setField(record, metadata.TagsKey, splitCommaList(doc.Tags))
	setField(record, metadata.CharactersKey, splitCommaList(doc.Characters))
	setField(record, metadata.TeamsKey, splitCommaList(doc.Teams))
	setField(record, metadata.LocationsKey, splitCommaList(doc.Locations))
	if arcs := splitCommaList(doc.StoryArc); len(arcs) > 0 {
		record[metadata.StoriesKey] = arcs
	}
	setString(record, metadata.WebKey, doc.Web)
	setInt(record, metadata.PageCountKey, doc.PageCount)
	setString(record, metadata.LanguageKey, doc.LanguageISO)
	setString(record, metadata.OriginalFormatKey, doc.Format)
	setString(record, metadata.AgeRatingKey, doc.AgeRating)
	setString(record, metadata.ScanInfoKey, doc.ScanInformation)
	if gtin := strings.TrimSpace(doc.GTIN); gtin != "" {
		record[metadata.IdentifiersKey] = metadata.Identifiers{
			identifiers.SourceGTIN: identifiers.New(identifiers.SourceGTIN, gtin, "", ""),
		}
	}
	if doc.Pages != nil && len(doc.Pages.Pages) > 0 {
		pages := metadata.Pages{}
		for _, page := range doc.Pages.Pages {
			if page.Image < 0 {
				continue
			}
			pages[page.Image] = metadata.Page{
				Size:     page.ImageSize,
				PageType: page.Type,
				Bookmark: page.Bookmark != "",
			}
		}
		if len(pages) > 0 {
			record[metadata.PagesKey] = pages
		}
	}
	return record, nil
}

func (comicInfoAdapter) Render(record metadata.Record) ([]byte, error) {
	doc := comicInfoXML{
		Title:           record.String(metadata.TitleKey),
		Series:          record.String(metadata.SeriesKey),
		Number:          record.IssueName(),
		Count:           recordInt(record, metadata.IssueCountKey),
		Volume:          recordInt(record, metadata.VolumeKey),
		StoryArc:        strings.Join(record.List(metadata.StoriesKey), ", "),
		Summary:         record.String(metadata.SummaryKey),
		Notes:           record.String(metadata.NotesKey),
		Publisher:       record.String(metadata.PublisherKey),
		Imprint:         record.String(metadata.ImprintKey),
		Genre:           joinSet(record, metadata.GenresKey),
		Tags:            joinSet(record, metadata.TagsKey),
		Web:             record.String(metadata.WebKey),
		PageCount:       recordInt(record, metadata.PageCountKey),
		LanguageISO:     record.String(metadata.LanguageKey),
		Format:          record.String(metadata.OriginalFormatKey),
		AgeRating:       record.String(metadata.AgeRatingKey),
		Characters:      joinSet(record, metadata.CharactersKey),
		Teams:           joinSet(record, metadata.TeamsKey),
		Locations:       joinSet(record, metadata.LocationsKey),
		ScanInformation: record.String(metadata.ScanInfoKey),
	}
	if date := record.Sub(metadata.DateKey); len(date) > 0 {
		doc.Year, _ = date.Int(metadata.YearKey)
		doc.Month, _ = date.Int(metadata.MonthKey)
		doc.Day, _ = date.Int(metadata.DayKey)
	}
	if credits := record.CreditsAt(); len(credits) > 0 {
		byRole := make(map[string][]string)
		for _, person := range credits.People() {
			for _, role := range credits[person].Sorted() {
				byRole[role] = append(byRole[role], person)
			}
		}
		for _, tag := range creditTags {
			*tag.get(&doc) = strings.Join(byRole[tag.role], ", ")
		}
	}
	if id, ok := record.IdentifiersAt()[identifiers.SourceGTIN]; ok {
		doc.GTIN = id.IDKey
	}
	if pages := record.PagesAt(); len(pages) > 0 {
		out := &comicInfoPages{}
		for _, index := range pages.Indexes() {
			page := pages[index]
			entry := comicInfoPage{
				Image:     index,
				Type:      page.PageType,
				ImageSize: page.Size,
			}
			if page.Bookmark {
				entry.Bookmark = "true"
			}
			out.Pages = append(out.Pages, entry)
		}
		doc.Pages = out
	}
	data, err := xml.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}
