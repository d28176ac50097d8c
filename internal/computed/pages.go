package computed

import (
	"panelbox/internal/metadata"
)

// derivePageCount makes the real archive image count authoritative. Without
// an archive the declared page map is the next best witness.
func derivePageCount(env *Env, current metadata.Record) metadata.Record {
	if env.HasArchive {
		count := len(env.ArchivePages)
		if existing, ok := current.Int(metadata.PageCountKey); ok && existing == count {
			return nil
		}
		return metadata.Record{metadata.PageCountKey: count}
	}
	if _, ok := current.Int(metadata.PageCountKey); ok {
		return nil
	}
	pages := current.PagesAt()
	if len(pages) == 0 {
		return nil
	}
	indexes := pages.Indexes()
	return metadata.Record{metadata.PageCountKey: indexes[len(indexes)-1] + 1}
}

// derivePages rebuilds the page map from the archive's actual entries.
// Declared page types and bookmarks survive for indexes that really exist;
// sizes always come from the archive. Page zero is labeled the front cover
// unless some page already claims it.
func derivePages(env *Env, current metadata.Record) metadata.Record {
	if !env.HasArchive || env.Config == nil || !env.Config.ComputePages {
		return nil
	}
	real := env.ArchivePages
	if len(real) == 0 {
		return nil
	}
	pages := make(metadata.Pages, len(real))
	for index, info := range real {
		pages[index] = metadata.Page{Size: info.Size}
	}
	for index, declared := range current.PagesAt() {
		if index < 0 || index >= len(real) {
			continue
		}
		pages[index] = pages[index].Overlay(metadata.Page{
			PageType: declared.PageType,
			Bookmark: declared.Bookmark,
		})
	}
	hasCover := false
	for _, page := range pages {
		if page.PageType == metadata.PageTypeFrontCover {
			hasCover = true
			break
		}
	}
	if !hasCover {
		first := pages[0]
		first.PageType = metadata.PageTypeFrontCover
		pages[0] = first
	}
	return metadata.Record{metadata.PagesKey: pages}
}
