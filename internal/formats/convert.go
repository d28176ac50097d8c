package formats

import (
	"strings"

	"panelbox/internal/metadata"
)

// Shared scalar and container conversions used by more than one adapter.

func setField(record metadata.Record, key string, values []string) {
	set := metadata.NewStringSet(values...)
	if len(set) > 0 {
		record[key] = set
	}
}

func splitCommaList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinSet(record metadata.Record, key string) string {
	return strings.Join(record.Set(key).Sorted(), ", ")
}

func setString(record metadata.Record, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		record[key] = value
	}
}

func setInt(record metadata.Record, key string, value int) {
	if value != 0 {
		record[key] = value
	}
}

func recordInt(record metadata.Record, key string) int {
	value, _ := record.Int(key)
	return value
}
