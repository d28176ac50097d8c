package computed

import (
	"regexp"
	"strconv"
	"strings"

	"panelbox/internal/metadata"
)

// issueSplitRE divides an issue display string into its numeric prefix and
// whatever trails it ("12.1AU" into "12.1" and "AU").
var issueSplitRE = regexp.MustCompile(`^(\d*\.?\d*)(.*)$`)

// deriveIssueParts decomposes the issue display string into number and
// suffix. Parts that are already explicit are never recomputed.
func deriveIssueParts(env *Env, current metadata.Record) metadata.Record {
	issue := current.Sub(metadata.IssueKey)
	name := strings.TrimSpace(issue.String(metadata.IssueNameKey))
	if name == "" {
		return nil
	}
	_, haveNumber := issue.Float(metadata.IssueNumberKey)
	haveSuffix := issue.String(metadata.IssueSuffixKey) != ""
	if haveNumber && haveSuffix {
		return nil
	}
	match := issueSplitRE.FindStringSubmatch(name)
	sub := metadata.Record{}
	if !haveNumber && match[1] != "" && match[1] != "." {
		if number, err := strconv.ParseFloat(match[1], 64); err == nil {
			sub[metadata.IssueNumberKey] = number
		} else {
			env.Logger.Debug("skipping unparseable issue number",
				"issue", name,
				"error", err)
		}
	}
	if !haveSuffix {
		if suffix := strings.TrimSpace(match[2]); suffix != "" {
			sub[metadata.IssueSuffixKey] = suffix
		}
	}
	if len(sub) == 0 {
		return nil
	}
	return metadata.Record{metadata.IssueKey: sub}
}

// deriveIssueName composes the issue display string from its parts when no
// display string is present.
func deriveIssueName(env *Env, current metadata.Record) metadata.Record {
	issue := current.Sub(metadata.IssueKey)
	if issue.String(metadata.IssueNameKey) != "" {
		return nil
	}
	number, haveNumber := issue.Float(metadata.IssueNumberKey)
	suffix := issue.String(metadata.IssueSuffixKey)
	if !haveNumber && suffix == "" {
		return nil
	}
	name := suffix
	if haveNumber {
		name = metadata.FormatIssueNumber(number) + suffix
	}
	return metadata.Record{metadata.IssueKey: metadata.Record{metadata.IssueNameKey: name}}
}
