package identifiers

import (
	"regexp"
	"strings"
)

// tokenRE matches bare "<source>:<key>" and "<source><key>" tag tokens.
var tokenRE = regexp.MustCompile(`(?i)(?:^|[\s\[])(?P<source>` + sourceTokenPattern() + `):?(?P<key>[\w-]+)`)

// ParseURN decodes "urn:<source>:<type>:<key>" and "urn:<source>:<key>"
// forms. The source alias is resolved strictly; an unknown source yields
// empty results.
func ParseURN(text string) (source, idType, idKey string) {
	text = strings.TrimSpace(text)
	if len(text) < 4 || !strings.EqualFold(text[:4], "urn:") {
		return "", "", ""
	}
	segments := strings.Split(text[4:], ":")
	if len(segments) < 2 {
		return "", "", ""
	}
	source = ResolveAlias(segments[0], false)
	if source == "" {
		return "", "", ""
	}
	idKey = segments[len(segments)-1]
	if len(segments) > 2 {
		idType = segments[len(segments)-2]
	}
	return source, idType, idKey
}

// URNString encodes an identifier as "urn:<source>:<type>:<key>", omitting
// the type segment when empty. Sources containing dots (bare hostnames)
// cannot form a valid URN namespace and yield "".
func URNString(source, idType, idKey string) string {
	if source == "" || idKey == "" || strings.Contains(source, ".") {
		return ""
	}
	if idType != "" {
		return "urn:" + source + ":" + idType + ":" + idKey
	}
	return "urn:" + source + ":" + idKey
}

// ParseString decodes any textual identifier encoding, layered: URN form
// first, then the Comic Vine long-key form, then a known source token
// followed by a key, and finally the whole string as an unqualified key
// for the default source when naked is true.
func ParseString(text string, naked bool) (source, idType, idKey string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", ""
	}
	if source, idType, idKey = ParseURN(text); idKey != "" {
		return source, idType, idKey
	}
	if match := comicVineLongKeyRE.FindStringSubmatch(text); match != nil {
		parts := partsBySource[SourceComicVine]
		return SourceComicVine, parts.TypeByCode(match[1], DefaultType), match[2]
	}
	if match := tokenRE.FindStringSubmatch(text); match != nil {
		var token, key string
		for i, name := range tokenRE.SubexpNames() {
			switch name {
			case "source":
				token = match[i]
			case "key":
				key = match[i]
			}
		}
		if source = ResolveAlias(token, false); source != "" && key != "" {
			return source, DefaultType, key
		}
	}
	if naked {
		return DefaultSource, DefaultType, text
	}
	return "", "", ""
}
