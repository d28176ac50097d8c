package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"panelbox/internal/metadata"
)

// flattenRecord turns a record into sorted field/value display rows,
// expanding nested sub-records into dotted keys.
func flattenRecord(record metadata.Record) [][]string {
	flat := map[string]string{}
	collectFields("", record, flat)

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, flat[key]})
	}
	return rows
}

func collectFields(prefix string, record metadata.Record, flat map[string]string) {
	for key, value := range record {
		name := prefix + key
		if sub, ok := value.(metadata.Record); ok {
			collectFields(name+".", sub, flat)
			continue
		}
		flat[name] = displayValue(value)
	}
}

func displayValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case float64:
		return metadata.FormatIssueNumber(v)
	case metadata.StringSet:
		return strings.Join(v.Sorted(), ", ")
	case []string:
		return strings.Join(v, "; ")
	case metadata.Pages:
		return fmt.Sprintf("%d pages", len(v))
	case metadata.Identifiers:
		parts := make([]string, 0, len(v))
		for _, source := range sortedKeys(v) {
			id := v[source]
			part := source + ":" + id.IDKey
			if id.IDType != "" {
				part = source + ":" + id.IDType + ":" + id.IDKey
			}
			parts = append(parts, part)
		}
		return strings.Join(parts, ", ")
	case metadata.Credits:
		parts := make([]string, 0, len(v))
		for _, person := range v.People() {
			roles := v[person].Sorted()
			if len(roles) == 0 {
				parts = append(parts, person)
				continue
			}
			parts = append(parts, person+" ("+strings.Join(roles, ", ")+")")
		}
		return strings.Join(parts, "; ")
	case []metadata.Reprint:
		parts := make([]string, 0, len(v))
		for _, reprint := range v {
			part := reprint.Series
			if reprint.Issue != "" {
				part += " #" + reprint.Issue
			}
			parts = append(parts, strings.TrimSpace(part))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys(ids metadata.Identifiers) []string {
	out := make([]string, 0, len(ids))
	for source := range ids {
		out = append(out, source)
	}
	sort.Strings(out)
	return out
}
