package filename

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fields holds everything a file name can carry.
type Fields struct {
	Series         string
	Title          string
	Issue          string
	IssueCount     int
	Volume         int
	Year           int
	OriginalFormat string
	ScanInfo       string
	Ext            string
	Remainders     []string
}

var originalFormatPatterns = []string{
	`Anthology`,
	`(?:One|1)[-\s]Shot`,
	`Annual`,
	`Annotations?`,
	`Box[-\s]Set`,
	`Digital`,
	`Director'?s\sCut`,
	`Giant(?:[-\s]Sized?)?`,
	`Graphic\sNovel`,
	`Hard[-\s]?Cover`,
	`HC`,
	`HD-Upscaled`,
	`King[-\s]Sized?`,
	`Magazine`,
	`Manga?`,
	`Omnibus`,
	`PDF(?:[-\s]Rip)?`,
	`Preview`,
	`Prologue`,
	`Scanlation`,
	`Script`,
	`Sketch`,
	`TPB`,
	`Trade[-\s]Paper[-\s]?Back`,
	`Web(?:[-\s]?Comic)?`,
}

var (
	nonSpaceDividerRE = regexp.MustCompile(`[_+]`)
	extraSpacesRE     = regexp.MustCompile(`\s\s+`)
	dashSplitRE       = regexp.MustCompile(`\s-\s`)

	issueCountRE = regexp.MustCompile(`(?i)\(of\s*(?P<count>\d+)\)`)
	yearTokenRE  = regexp.MustCompile(`\((?P<year>[12]\d{3})\)`)
	yearLooseRE  = regexp.MustCompile(`\b(?P<year>[12]\d{3})\b`)

	originalFormatScanRE = regexp.MustCompile(
		`(?i)\((?P<format>` + strings.Join(originalFormatPatterns, "|") + `)(?:-(?P<scan>[^()]+?))?\)`)

	volumeRE = regexp.MustCompile(`(?i)v(?:ol(?:ume)?)?\.?\s*(?P<volume>\d+)`)

	issueExp      = `(?P<issue>\d+\.?\d*\w*)`
	issueNumberRE = regexp.MustCompile(`#` + issueExp)
	issueTokenRE  = regexp.MustCompile(`^` + issueExp + `$`)
	issueEndRE    = regexp.MustCompile(`\s` + issueExp + `$`)
)

var archiveExtensions = map[string]struct{}{
	".cbz": {}, ".cbr": {}, ".cbt": {}, ".cb7": {},
	".zip": {}, ".rar": {}, ".pdf": {},
}

var titleCaser = cases.Title(language.English)

// Parse tokenizes a comic archive file name.
func Parse(name string) Fields {
	var fields Fields
	name = strings.TrimSpace(name)
	if ext := strings.ToLower(path.Ext(name)); ext != "" {
		if _, ok := archiveExtensions[ext]; ok {
			fields.Ext = strings.TrimPrefix(ext, ".")
			name = name[:len(name)-len(ext)]
		}
	}
	name = nonSpaceDividerRE.ReplaceAllString(name, " ")
	name = extraSpacesRE.ReplaceAllString(name, " ")

	name = popGroup(name, issueCountRE, "count", func(v string) {
		fields.IssueCount, _ = strconv.Atoi(v)
	})
	fields.OriginalFormat, fields.ScanInfo, name = popOriginalFormat(name)
	name = popGroup(name, yearTokenRE, "year", func(v string) {
		fields.Year, _ = strconv.Atoi(v)
	})
	name = popGroup(name, volumeRE, "volume", func(v string) {
		fields.Volume, _ = strconv.Atoi(v)
	})
	name = popGroup(name, issueNumberRE, "issue", func(v string) {
		fields.Issue = trimIssue(v)
	})

	segments := splitSegments(name)
	assignRemaining(segments, &fields)
	return fields
}

func popOriginalFormat(name string) (format, scan, rest string) {
	match := originalFormatScanRE.FindStringSubmatchIndex(name)
	if match == nil {
		return "", "", name
	}
	groups := originalFormatScanRE.SubexpNames()
	for i, group := range groups {
		start, end := match[2*i], match[2*i+1]
		if start < 0 {
			continue
		}
		switch group {
		case "format":
			format = name[start:end]
		case "scan":
			scan = name[start:end]
		}
	}
	rest = strings.TrimSpace(name[:match[0]] + " " + name[match[1]:])
	return format, scan, rest
}

func popGroup(name string, re *regexp.Regexp, group string, assign func(string)) string {
	match := re.FindStringSubmatchIndex(name)
	if match == nil {
		return name
	}
	if group != "" {
		if value := string(re.ExpandString(nil, "${"+group+"}", name, match)); value != "" {
			assign(value)
		}
	}
	return strings.TrimSpace(extraSpacesRE.ReplaceAllString(name[:match[0]]+" "+name[match[1]:], " "))
}

func splitSegments(name string) []string {
	var out []string
	for _, segment := range dashSplitRE.Split(name, -1) {
		segment = strings.TrimSpace(segment)
		segment = strings.Trim(segment, "()")
		segment = strings.TrimSpace(segment)
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func assignRemaining(segments []string, fields *Fields) {
	var texts []string
	for _, segment := range segments {
		if fields.Issue == "" {
			if match := issueTokenRE.FindStringSubmatch(segment); match != nil {
				fields.Issue = trimIssue(match[1])
				continue
			}
			if match := issueEndRE.FindStringSubmatchIndex(segment); match != nil {
				fields.Issue = trimIssue(segment[match[2]:match[3]])
				segment = strings.TrimSpace(segment[:match[0]])
			}
		}
		if year := yearLooseRE.FindStringSubmatch(segment); year != nil && fields.Year == 0 {
			fields.Year, _ = strconv.Atoi(year[1])
			segment = strings.TrimSpace(strings.Replace(segment, year[0], "", 1))
		}
		if segment != "" {
			texts = append(texts, segment)
		}
	}
	if len(texts) > 0 {
		fields.Series = normalizeCase(texts[0])
	}
	if len(texts) > 1 {
		fields.Title = normalizeCase(texts[1])
	}
	if len(texts) > 2 {
		fields.Remainders = texts[2:]
	}
}

func trimIssue(value string) string {
	trimmed := strings.TrimLeft(value, "0")
	if trimmed == "" {
		return "0"
	}
	if trimmed[0] == '.' {
		return "0" + trimmed
	}
	return trimmed
}

// normalizeCase title-cases names that arrive all-lower or all-upper;
// mixed-case names are someone's deliberate styling and pass through.
func normalizeCase(value string) string {
	if value == strings.ToLower(value) || value == strings.ToUpper(value) {
		return titleCaser.String(strings.ToLower(value))
	}
	return value
}
