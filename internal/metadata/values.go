package metadata

import (
	"sort"
	"strconv"
	"strings"
)

// StringSet is an unordered collection of unique strings.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values, skipping empty strings.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value unless it is empty after trimming.
func (s StringSet) Add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	s[value] = struct{}{}
}

// Contains reports membership.
func (s StringSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// Union adds every member of other.
func (s StringSet) Union(other StringSet) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Page holds the attributes recorded for one archive page. Zero values mean
// the attribute is unset.
type Page struct {
	Size     int64  `json:"size,omitempty" yaml:"size,omitempty"`
	PageType string `json:"page_type,omitempty" yaml:"page_type,omitempty"`
	Bookmark bool   `json:"bookmark,omitempty" yaml:"bookmark,omitempty"`
}

// PageTypeFrontCover is the page type guaranteed on page zero when no other
// page claims it.
const PageTypeFrontCover = "FrontCover"

// Overlay returns the page with other's set attributes winning.
func (p Page) Overlay(other Page) Page {
	out := p
	if other.Size != 0 {
		out.Size = other.Size
	}
	if other.PageType != "" {
		out.PageType = other.PageType
	}
	if other.Bookmark {
		out.Bookmark = true
	}
	return out
}

// Pages maps page index to page attributes.
type Pages map[int]Page

// Clone returns an independent copy.
func (p Pages) Clone() Pages {
	out := make(Pages, len(p))
	for i, page := range p {
		out[i] = page
	}
	return out
}

// Indexes returns the page indexes in ascending order.
func (p Pages) Indexes() []int {
	out := make([]int, 0, len(p))
	for i := range p {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Identifier locates one entry in an external comic database.
type Identifier struct {
	IDKey  string `json:"key,omitempty" yaml:"key,omitempty"`
	IDType string `json:"type,omitempty" yaml:"type,omitempty"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Identifiers maps canonical database source ids to identifiers.
type Identifiers map[string]Identifier

// Clone returns an independent copy.
func (ids Identifiers) Clone() Identifiers {
	out := make(Identifiers, len(ids))
	for source, id := range ids {
		out[source] = id
	}
	return out
}

// Credits maps a person's name to the set of roles they are credited with.
type Credits map[string]StringSet

// Add records a role for a person, merging case-insensitively into an
// existing entry when one exists.
func (c Credits) Add(person, role string) {
	person = strings.TrimSpace(person)
	if person == "" {
		return
	}
	key := person
	for existing := range c {
		if strings.EqualFold(existing, person) {
			key = existing
			break
		}
	}
	roles := c[key]
	if roles == nil {
		roles = NewStringSet()
		c[key] = roles
	}
	roles.Add(role)
}

// Clone returns an independent copy.
func (c Credits) Clone() Credits {
	out := make(Credits, len(c))
	for person, roles := range c {
		out[person] = roles.Clone()
	}
	return out
}

// People returns credited names in lexical order.
func (c Credits) People() []string {
	out := make([]string, 0, len(c))
	for person := range c {
		out = append(out, person)
	}
	sort.Strings(out)
	return out
}

// Reprint describes one alternate printing of the issue.
type Reprint struct {
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Imprint   string `json:"imprint,omitempty" yaml:"imprint,omitempty"`
	Series    string `json:"series,omitempty" yaml:"series,omitempty"`
	Volume    int    `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue     string `json:"issue,omitempty" yaml:"issue,omitempty"`
}

// SortKey is the composite identity used to de-duplicate and order reprints.
func (r Reprint) SortKey() string {
	return strings.ToLower(strings.Join([]string{
		r.Language, r.Publisher, r.Imprint, r.Series,
		strconv.Itoa(r.Volume), r.Issue,
	}, "\x00"))
}

// SortReprints orders reprints by composite key and drops duplicates.
func SortReprints(reprints []Reprint) []Reprint {
	seen := make(map[string]struct{}, len(reprints))
	out := make([]Reprint, 0, len(reprints))
	for _, r := range reprints {
		key := r.SortKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortKey() < out[j].SortKey() })
	return out
}
