package metadata

// Canonical field names. Adapters translate format-native tags into these
// and nothing else.
const (
	AgeRatingKey      = "age_rating"
	BookmarkKey       = "bookmark"
	CharactersKey     = "characters"
	CountryKey        = "country"
	CreditsKey        = "credits"
	DateKey           = "date"
	GenresKey         = "genres"
	IdentifiersKey    = "identifiers"
	ImprintKey        = "imprint"
	IssueKey          = "issue"
	IssueCountKey     = "issue_count"
	LanguageKey       = "language"
	LocationsKey      = "locations"
	NotesKey          = "notes"
	OriginalFormatKey = "original_format"
	PageCountKey      = "page_count"
	PagesKey          = "pages"
	PublisherKey      = "publisher"
	ReprintsKey       = "reprints"
	ScanInfoKey       = "scan_info"
	SeriesKey         = "series"
	StoriesKey        = "stories"
	SummaryKey        = "summary"
	TaggerKey         = "tagger"
	TagsKey           = "tags"
	TeamsKey          = "teams"
	TitleKey          = "title"
	UpdatedAtKey      = "updated_at"
	VolumeKey         = "volume"
	VolumeCountKey    = "volume_count"
	WebKey            = "web"
)

// Sub-record field names for the nested issue entity.
const (
	IssueNameKey   = "name"
	IssueNumberKey = "number"
	IssueSuffixKey = "suffix"
)

// Sub-record field names for the nested date entity.
const (
	CoverDateKey = "cover_date"
	YearKey      = "year"
	MonthKey     = "month"
	DayKey       = "day"
)

// Kind classifies how a canonical field combines when records are merged.
type Kind int

const (
	// KindScalar fields take the later record's value.
	KindScalar Kind = iota
	// KindSet fields are unordered string sets combined by union.
	KindSet
	// KindList fields are ordered lists; additive merges concatenate,
	// de-duplicate, and sort.
	KindList
	// KindAlwaysReplace fields are replaced wholesale even under an
	// additive strategy. Free-text titles and curated story lists are
	// mutually unreliable, so overlaying them adds confusion, not data.
	KindAlwaysReplace
	// KindPageMap fields merge keyed by page index with a shallow
	// per-page overlay.
	KindPageMap
	// KindIdentifierMap fields only ever gain sources; a known identifier
	// for a source is never overwritten.
	KindIdentifierMap
	// KindCreditMap fields union role sets per person, matching person
	// names case-insensitively.
	KindCreditMap
	// KindReprintList fields concatenate then de-duplicate by the
	// composite (language, publisher, imprint, series, volume, issue) key.
	KindReprintList
	// KindNested fields are sub-records merged key-wise with the parent
	// strategy.
	KindNested
)

var fieldKinds = map[string]Kind{
	CharactersKey: KindSet,
	GenresKey:     KindSet,
	LocationsKey:  KindSet,
	TagsKey:       KindSet,
	TeamsKey:      KindSet,

	TitleKey:   KindAlwaysReplace,
	StoriesKey: KindAlwaysReplace,

	PagesKey:       KindPageMap,
	IdentifiersKey: KindIdentifierMap,
	CreditsKey:     KindCreditMap,
	ReprintsKey:    KindReprintList,

	IssueKey: KindNested,
	DateKey:  KindNested,
}

// KindOf reports the combination kind for a canonical field name. Unknown
// fields are scalars.
func KindOf(key string) Kind {
	if k, ok := fieldKinds[key]; ok {
		return k
	}
	return KindScalar
}
