package identifiers

import (
	"panelbox/internal/metadata"
)

// New builds a structured identifier for (source, key). The key is
// normalized (Comic Vine long keys are split into type and bare key) and
// the canonical deep link is generated unless url is already explicit.
func New(source, idKey, idType, url string) metadata.Identifier {
	if source == "" {
		source = DefaultSource
	}
	if idType == "" {
		idType = DefaultType
	}
	if source == SourceComicVine {
		idType, idKey = NormalizeComicVineKey(idType, idKey)
	}
	if url == "" {
		url = URL(source, idType, idKey)
	}
	return metadata.Identifier{IDKey: idKey, IDType: idType, URL: url}
}

// FromText resolves any textual identifier encoding into a (source,
// identifier) pair. Empty source means the text was not an identifier.
func FromText(text string, naked bool) (string, metadata.Identifier) {
	source, idType, idKey := ParseString(text, naked)
	if source == "" || idKey == "" {
		return "", metadata.Identifier{}
	}
	return source, New(source, idKey, idType, "")
}

// FromURL resolves a full URL into a (source, identifier) pair, keeping
// the original URL on the identifier.
func FromURL(url string) (string, metadata.Identifier) {
	source, idType, idKey := ParseURL(url)
	if source == "" || idKey == "" {
		return "", metadata.Identifier{}
	}
	return source, New(source, idKey, idType, url)
}
