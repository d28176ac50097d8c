package filename

import (
	"fmt"
	"strings"

	"panelbox/internal/textutil"
)

// Unparse renders the preferred file name for the fields:
// "Series v2 #012 (of 012) (1999) - Title (Digital) (Nahga).cbz".
// The title rides in a dash segment so Parse can tell it from the series.
func (f Fields) Unparse() string {
	var tokens []string
	add := func(token string) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	add(f.Series)
	if f.Volume > 0 {
		add(fmt.Sprintf("v%d", f.Volume))
	}
	if f.Issue != "" {
		add("#" + padIssue(f.Issue))
	}
	if f.IssueCount > 0 {
		add(fmt.Sprintf("(of %03d)", f.IssueCount))
	}
	if f.Year > 0 {
		add(fmt.Sprintf("(%d)", f.Year))
	}
	name := strings.Join(tokens, " ")
	if title := strings.TrimSpace(f.Title); title != "" {
		if name == "" {
			name = title
		} else {
			name += " - " + title
		}
	}
	if f.OriginalFormat != "" {
		name += " (" + f.OriginalFormat + ")"
	}
	if f.ScanInfo != "" {
		name += " (" + f.ScanInfo + ")"
	}
	for _, remainder := range f.Remainders {
		name += " - " + remainder
	}
	ext := f.Ext
	if ext == "" {
		ext = "cbz"
	}
	return textutil.SanitizeFileName(name) + "." + ext
}

// padIssue zero-pads the numeric prefix of an issue to three digits,
// leaving any suffix intact ("12.1AU" becomes "012.1AU").
func padIssue(issue string) string {
	digits := 0
	for digits < len(issue) && issue[digits] >= '0' && issue[digits] <= '9' {
		digits++
	}
	for pad := 3 - digits; pad > 0; pad-- {
		issue = "0" + issue
	}
	return issue
}
