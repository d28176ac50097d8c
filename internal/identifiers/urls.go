package identifiers

import (
	"fmt"
	"regexp"
	"strings"
)

// Parts owns one source's web addressing: its domain, the map from semantic
// entity type to URL path-segment code, a parse regex, and a generation
// template.
type Parts struct {
	Domain   string
	Types    map[string]string
	pathRE   *regexp.Regexp
	template string
}

func newParts(domain string, types map[string]string, pathExp, template string) *Parts {
	parts := strings.Split(domain, ".")
	sld := strings.Join(parts[max(0, len(parts)-2):], ".")
	exp := `(?i)^(?:https?://)?(?:[^/\s]*` + regexp.QuoteMeta(sld) + `)/` + pathExp + `$`
	return &Parts{
		Domain:   domain,
		Types:    types,
		pathRE:   regexp.MustCompile(exp),
		template: template,
	}
}

// TypeByCode resolves a URL path-segment code back to a semantic entity
// type, falling back to fallback when the code is unknown or empty.
func (p *Parts) TypeByCode(code, fallback string) string {
	for idType, slug := range p.Types {
		if strings.EqualFold(slug, code) {
			return idType
		}
	}
	return fallback
}

func (p *Parts) defaultType() string {
	if _, ok := p.Types[DefaultType]; ok {
		return DefaultType
	}
	for _, idType := range []string{"series", "publisher"} {
		if _, ok := p.Types[idType]; ok {
			return idType
		}
	}
	for idType := range p.Types {
		return idType
	}
	return DefaultType
}

// ParseURL extracts (entity type, key) from a URL for this source.
func (p *Parts) ParseURL(url string) (idType, idKey string) {
	match := p.pathRE.FindStringSubmatch(strings.TrimSpace(url))
	if match == nil {
		return "", ""
	}
	var code string
	for i, name := range p.pathRE.SubexpNames() {
		switch name {
		case "type":
			code = match[i]
		case "key":
			idKey = match[i]
		}
	}
	if idKey == "" {
		return "", ""
	}
	idType = p.TypeByCode(code, p.defaultType())
	return idType, idKey
}

// URL renders the canonical deep link for (entity type, key), or "" when
// the source has no slug for that type.
func (p *Parts) URL(idType, idKey string) string {
	if idType == "" {
		idType = p.defaultType()
	}
	slug, ok := p.Types[idType]
	if !ok || idKey == "" {
		return ""
	}
	path := strings.NewReplacer("{type}", slug, "{key}", idKey).Replace(p.template)
	return fmt.Sprintf("https://%s/%s", p.Domain, path)
}

// comicVineLongKeyRE matches the 4-digit-type-prefixed long key form
// ("4000-12345") Comic Vine uses in URLs and some tagger output.
var comicVineLongKeyRE = regexp.MustCompile(`(?P<type>\d{4})-(?P<key>\d+)`)

var partsBySource = map[string]*Parts{
	SourceAniList: newParts("anilist.co",
		map[string]string{"series": "manga"},
		`(?P<type>manga)/(?P<key>\d+)(?:/[^\s]*)?`,
		"{type}/{key}"),
	SourceASIN: newParts("www.amazon.com",
		map[string]string{"issue": "dp"},
		`dp/(?P<key>[^/\s]+)`,
		"{type}/{key}"),
	SourceComicVine: newParts("comicvine.gamespot.com",
		map[string]string{
			"arc":       "4045",
			"character": "4005",
			"creator":   "4040",
			"issue":     "4000",
			"location":  "4020",
			"publisher": "4010",
			"series":    "4050",
			"team":      "4060",
		},
		`c/(?P<type>\d{4})-(?P<key>\d+)/?`,
		"c/{type}-{key}/"),
	SourceComixology: newParts("www.comixology.com",
		map[string]string{"issue": "digital-comic"},
		`c/(?P<type>[^/\s]+)/(?P<key>\d+)`,
		"c/{type}/{key}"),
	SourceGCD: newParts("comics.org",
		map[string]string{
			"character": "character",
			"creator":   "creator",
			"issue":     "issue",
			"publisher": "indicia_publisher",
			"series":    "series",
			"universe":  "universe",
		},
		`(?P<type>[^/\s]+)/(?P<key>\d+)/?`,
		"{type}/{key}/"),
	SourceISBN: newParts("isbndb.com",
		map[string]string{"issue": "book", "series": "series"},
		`(?P<type>book|series)/(?P<key>[\d-]+)`,
		"{type}/{key}"),
	SourceKitsu: newParts("kitsu.app",
		map[string]string{"series": "manga"},
		`(?P<type>manga)/(?P<key>[^/\s]+)`,
		"{type}/{key}"),
	SourceLCG: newParts("leagueofcomicgeeks.com",
		map[string]string{"issue": "comic"},
		`(?P<type>comic)/(?P<key>[^/\s]+)(?:/[^\s]*)?`,
		"{type}/{key}"),
	SourceMangaDex: newParts("mangadex.org",
		map[string]string{"series": "title"},
		`(?P<type>title)/(?P<key>[^/\s]+)(?:/[^\s]*)?`,
		"{type}/{key}"),
	SourceMangaUpdates: newParts("mangaupdates.com",
		map[string]string{"series": "series"},
		`(?P<type>series)/(?P<key>[^/\s]+)(?:/[^\s]*)?`,
		"{type}/{key}"),
	SourceMarvel: newParts("marvel.com",
		map[string]string{"issue": "issue", "series": "series"},
		`comics/(?P<type>issue|series)/(?P<key>\d+)(?:/[^\s]*)?`,
		"comics/{type}/{key}"),
	SourceMetron: newParts("metron.cloud",
		map[string]string{
			"arc":       "arc",
			"character": "character",
			"creator":   "creator",
			"genre":     "genre",
			"imprint":   "imprint",
			"issue":     "issue",
			"location":  "location",
			"publisher": "publisher",
			"reprint":   "reprint",
			"role":      "role",
			"series":    "series",
			"story":     "story",
			"tag":       "tag",
			"team":      "team",
			"universe":  "universe",
		},
		`(?P<type>[^/\s]+)/(?P<key>[^/\s]+?)/?`,
		"{type}/{key}"),
	SourceMyAnimeList: newParts("myanimelist.net",
		map[string]string{"series": "manga"},
		`(?P<type>manga)/(?P<key>\d+)(?:/[^\s]*)?`,
		"{type}/{key}"),
	SourceUPC: newParts("www.barcodelookup.com",
		map[string]string{"issue": "issue"},
		`(?P<key>[\d-]+)`,
		"{key}"),
}

// PartsFor returns the web addressing table for a source, or nil when the
// source has no web presence (bare GTINs).
func PartsFor(source string) *Parts {
	return partsBySource[source]
}

// URL renders the deep link for (source, type, key), or "" when unknown.
func URL(source, idType, idKey string) string {
	parts := partsBySource[source]
	if parts == nil {
		return ""
	}
	return parts.URL(idType, idKey)
}

// ParseURL tries every known source's pattern against a URL, highest
// priority first.
func ParseURL(url string) (source, idType, idKey string) {
	for _, candidate := range SourcePriority {
		parts := partsBySource[candidate]
		if parts == nil {
			continue
		}
		if idType, idKey = parts.ParseURL(url); idKey != "" {
			return candidate, idType, idKey
		}
	}
	return "", "", ""
}

// NormalizeComicVineKey splits a long-form key ("4000-12345") into its
// entity type and bare key. Keys already bare pass through unchanged.
func NormalizeComicVineKey(idType, idKey string) (string, string) {
	match := comicVineLongKeyRE.FindStringSubmatch(idKey)
	if match == nil {
		return idType, idKey
	}
	parts := partsBySource[SourceComicVine]
	idType = parts.TypeByCode(match[1], idType)
	return idType, match[2]
}
