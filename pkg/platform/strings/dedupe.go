// Package strings provides helpers for list-valued configuration strings.
package strings

import (
	"strings"
)

// SplitList splits a comma separated value, trimming each item and dropping
// empty ones. Order and duplicates are kept.
func SplitList(value string) []string {
	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitUnique is SplitList without repeated items; first occurrence wins.
//
//	SplitUnique(" https://a.example, https://b.example,https://a.example,")
//	// []string{"https://a.example", "https://b.example"}
func SplitUnique(value string) []string {
	items := SplitList(value)
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
