package metadata

import (
	"strconv"
	"time"
)

// FormatIssueNumber renders an issue number without trailing zero decimal
// places, so 12.10 prints as "12.1" and 5.0 as "5".
func FormatIssueNumber(number float64) string {
	return strconv.FormatFloat(number, 'f', -1, 64)
}

// IssueName returns the display string of the nested issue record.
func (r Record) IssueName() string {
	return r.Sub(IssueKey).String(IssueNameKey)
}

// IssueNumber returns the numeric component of the nested issue record.
func (r Record) IssueNumber() (float64, bool) {
	sub := r.Sub(IssueKey)
	if sub == nil {
		return 0, false
	}
	return sub.Float(IssueNumberKey)
}

// CoverDate returns the full date of the nested date record.
func (r Record) CoverDate() (time.Time, bool) {
	sub := r.Sub(DateKey)
	if sub == nil {
		return time.Time{}, false
	}
	return sub.Time(CoverDateKey)
}
