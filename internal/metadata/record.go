package metadata

import (
	"time"
)

// Record is a canonical metadata mapping. Values are scalars (string, int,
// float64, bool, time.Time), StringSet, []string, Pages, Identifiers,
// Credits, []Reprint, or a nested Record for issue and date.
type Record map[string]any

// String returns a string field, or "" when unset or of another type.
func (r Record) String(key string) string {
	v, _ := r[key].(string)
	return v
}

// Int returns an integer field. It tolerates the numeric types adapters
// produce.
func (r Record) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Float returns a float field.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Time returns a time field.
func (r Record) Time(key string) (time.Time, bool) {
	v, ok := r[key].(time.Time)
	return v, ok
}

// Sub returns a nested sub-record, or nil when unset.
func (r Record) Sub(key string) Record {
	v, _ := r[key].(Record)
	return v
}

// EnsureSub returns the nested sub-record for key, creating it if needed.
func (r Record) EnsureSub(key string) Record {
	if sub, ok := r[key].(Record); ok {
		return sub
	}
	sub := Record{}
	r[key] = sub
	return sub
}

// Set returns a string-set field, or nil when unset.
func (r Record) Set(key string) StringSet {
	v, _ := r[key].(StringSet)
	return v
}

// List returns an ordered list field, or nil when unset.
func (r Record) List(key string) []string {
	v, _ := r[key].([]string)
	return v
}

// PagesAt returns the page map, or nil when unset.
func (r Record) PagesAt() Pages {
	v, _ := r[PagesKey].(Pages)
	return v
}

// IdentifiersAt returns the identifier map, or nil when unset.
func (r Record) IdentifiersAt() Identifiers {
	v, _ := r[IdentifiersKey].(Identifiers)
	return v
}

// CreditsAt returns the credit map, or nil when unset.
func (r Record) CreditsAt() Credits {
	v, _ := r[CreditsKey].(Credits)
	return v
}

// ReprintsAt returns the reprint list, or nil when unset.
func (r Record) ReprintsAt() []Reprint {
	v, _ := r[ReprintsKey].([]Reprint)
	return v
}

// Clone deep-copies the record and every container value in it.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneValue deep-copies a canonical value.
func CloneValue(value any) any {
	switch v := value.(type) {
	case Record:
		return v.Clone()
	case StringSet:
		return v.Clone()
	case Pages:
		return v.Clone()
	case Identifiers:
		return v.Clone()
	case Credits:
		return v.Clone()
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []Reprint:
		out := make([]Reprint, len(v))
		copy(out, v)
		return out
	default:
		return value
	}
}

// IsEmpty reports whether a canonical value carries no information and
// should be skipped during merge.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case Record:
		return len(v) == 0
	case StringSet:
		return len(v) == 0
	case Pages:
		return len(v) == 0
	case Identifiers:
		return len(v) == 0
	case Credits:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []Reprint:
		return len(v) == 0
	case time.Time:
		return v.IsZero()
	default:
		return false
	}
}
