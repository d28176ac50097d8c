package computed

import (
	"strings"

	"panelbox/internal/metadata"
)

// deriveStoriesFromTitle splits a semicolon-joined title into the story
// list when no story list exists.
func deriveStoriesFromTitle(env *Env, current metadata.Record) metadata.Record {
	if len(current.List(metadata.StoriesKey)) > 0 {
		return nil
	}
	title := current.String(metadata.TitleKey)
	if title == "" {
		return nil
	}
	var stories []string
	for _, part := range strings.Split(title, ";") {
		if part = strings.TrimSpace(part); part != "" {
			stories = append(stories, part)
		}
	}
	if len(stories) == 0 {
		return nil
	}
	return metadata.Record{metadata.StoriesKey: stories}
}

// deriveTitleFromStories regenerates the display title from the story
// list. The stories are authoritative: a curated list must override a
// title scraped from a lesser source such as the file name.
func deriveTitleFromStories(env *Env, current metadata.Record) metadata.Record {
	stories := current.List(metadata.StoriesKey)
	if len(stories) == 0 {
		return nil
	}
	return metadata.Record{metadata.TitleKey: strings.Join(stories, "; ")}
}
