package identifiers

import (
	"sort"
	"strings"
)

// Canonical database source ids.
const (
	SourceComicVine    = "comicvine"
	SourceMetron       = "metron"
	SourceGCD          = "grandcomicsdatabase"
	SourceLCG          = "leagueofcomicgeeks"
	SourceMarvel       = "marvel"
	SourceAniList      = "anilist"
	SourceKitsu        = "kitsu"
	SourceMangaDex     = "mangadex"
	SourceMangaUpdates = "mangaupdates"
	SourceMyAnimeList  = "myanimelist"
	SourceGTIN         = "gtin"
	SourceISBN         = "isbn"
	SourceUPC          = "upc"
	SourceASIN         = "asin"
	SourceComixology   = "comixology"
)

// DefaultSource receives unqualified keys; most tagger tooling writes bare
// Comic Vine issue ids.
const DefaultSource = SourceComicVine

// DefaultType is the entity type assumed when an encoding does not carry
// one.
const DefaultType = "issue"

// sourceNames maps canonical ids to the display names tagger notes use.
var sourceNames = map[string]string{
	SourceAniList:      "AniList",
	SourceComicVine:    "Comic Vine",
	SourceComixology:   "ComiXology",
	SourceGCD:          "Grand Comics Database",
	SourceKitsu:        "Kitsu",
	SourceLCG:          "League of Comic Geeks",
	SourceMangaDex:     "MangaDex",
	SourceMangaUpdates: "MangaUpdates",
	SourceMarvel:       "Marvel",
	SourceMetron:       "Metron",
	SourceMyAnimeList:  "MyAnimeList",
	SourceASIN:         "Amazon",
	SourceGTIN:         "GTIN",
	SourceISBN:         "ISBN",
	SourceUPC:          "UPC",
}

// sourceAliases lists the alternate tokens (abbreviations, legacy names,
// bare hostnames) seen in the wild for each source.
var sourceAliases = map[string][]string{
	SourceAniList:      {"anilist.co"},
	SourceASIN:         {"amazon.com", "www.amazon.com"},
	SourceComicVine:    {"cvdb", "comicvine.gamespot.com"},
	SourceComixology:   {"cmxdb", "comixology.com"},
	SourceGCD:          {"gcd", "comics.org"},
	SourceKitsu:        {"kitsu.app"},
	SourceLCG:          {"lcg", "leagueofcomicgeeks.com"},
	SourceMangaDex:     {"mangadex.org"},
	SourceMangaUpdates: {"mangaupdates.com"},
	SourceMarvel:       {"marvel.com"},
	SourceMetron:       {"metron.cloud"},
	SourceMyAnimeList:  {"myanimelist.net"},
}

// SourcePriority orders sources for choosing which identifier backs a
// synthesized web link.
var SourcePriority = []string{
	SourceComicVine,
	SourceMetron,
	SourceGCD,
	SourceLCG,
	SourceMarvel,
	SourceAniList,
	SourceMangaDex,
	SourceMangaUpdates,
	SourceMyAnimeList,
	SourceKitsu,
	SourceComixology,
	SourceASIN,
	SourceISBN,
	SourceUPC,
	SourceGTIN,
}

var aliasToSource = buildAliasMap()

func buildAliasMap() map[string]string {
	out := make(map[string]string)
	for source, name := range sourceNames {
		out[source] = source
		out[strings.ToLower(name)] = source
	}
	for source, aliases := range sourceAliases {
		for _, alias := range aliases {
			out[strings.ToLower(alias)] = source
		}
	}
	return out
}

// SourceName returns the display name for a canonical source id.
func SourceName(source string) string {
	if name, ok := sourceNames[source]; ok {
		return name
	}
	return source
}

// SourceByName resolves a display name back to a canonical source id.
func SourceByName(name string) string {
	return aliasToSource[strings.ToLower(strings.TrimSpace(name))]
}

// ResolveAlias maps any known alias to its canonical source id. The lookup
// is case-insensitive. When the token matches nothing and naked is true the
// default source is assumed; otherwise the empty string is returned.
func ResolveAlias(token string, naked bool) string {
	if source, ok := aliasToSource[strings.ToLower(strings.TrimSpace(token))]; ok {
		return source
	}
	if naked {
		return DefaultSource
	}
	return ""
}

// KnownSources returns every canonical source id in lexical order.
func KnownSources() []string {
	out := make([]string, 0, len(sourceNames))
	for source := range sourceNames {
		out = append(out, source)
	}
	sort.Strings(out)
	return out
}

// sourceTokenPattern is the alternation of every token that may qualify a
// key in tags and notes.
func sourceTokenPattern() string {
	tokens := make([]string, 0, len(aliasToSource))
	for token := range aliasToSource {
		if strings.ContainsAny(token, "./ ") {
			// Hostnames and spaced display names never qualify keys in
			// tag tokens.
			continue
		}
		tokens = append(tokens, token)
	}
	// Longest first so "comicvine" wins over a hypothetical "comic".
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return strings.Join(tokens, "|")
}
