// SPDX-License-Identifier: GPL-3.0-only

package wiki

import (
	"strings"
	"unicode"
)

const citationNeeded = "[citation needed]"

var quoteReplacer = strings.NewReplacer("“", `"`, "”", `"`)

// Normalize cleans a raw table cell. It returns nil when nothing is left.
func Normalize(raw string) *string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.ReplaceAll(s, citationNeeded, ""))

	startsBracket := strings.HasPrefix(s, "[")
	endsBracket := strings.HasSuffix(s, "]")
	switch {
	case startsBracket && endsBracket:
		// reference only, e.g. "[7]"
		s = ""
	case endsBracket:
		// trailing reference, e.g. "foo [7]"; only the last one is cut, so
		// "foo [1][2]" keeps "foo [1]"
		if i := strings.LastIndex(s, "["); i >= 0 {
			s = strings.TrimRightFunc(s[:i], unicode.IsSpace)
		}
	}

	s = quoteReplacer.Replace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CanonicalStatus folds the known spelling variants of operational states.
func CanonicalStatus(status *string) *string {
	if status == nil {
		return nil
	}
	var canonical string
	switch *status {
	case "Not Operational", "Not opearational":
		canonical = "Not operational"
	case "operational":
		canonical = "Operational"
	default:
		return status
	}
	return &canonical
}

// NormalizeStatusCodes canonicalizes, deduplicates and sorts a status list.
func NormalizeStatusCodes(codes []string) []string {
	set := NewStatusSet()
	for _, code := range codes {
		if c := CanonicalStatus(Normalize(code)); c != nil {
			set.Add(*c)
		}
	}
	return set.Sorted()
}
