// Package textutils provides text extraction and manipulation utilities.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	timeOfDayRe  = regexp.MustCompile(`\d{2}-\d{2}-(?:20)?\d{2} (\d{2}):(\d{2})`)
)

// CollapseWhitespace trims a string and folds every run of whitespace into a
// single space.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// JoinSegments concatenates the non-empty segments with single spaces. Each
// segment is whitespace-normalized first.
func JoinSegments(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if cleaned := CollapseWhitespace(segment); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.Join(parts, " ")
}

// ExtractTimeOfDay extracts an "HHMM" clock time from a memo such as
// "Pasvolgnr:008 01-11-2018 14:30 Transactie:X123". Memos carry the time next
// to a date, so the pattern anchors on the date to avoid matching other
// number pairs. Returns "" if no plausible time is present.
func ExtractTimeOfDay(memo string) string {
	for _, matches := range timeOfDayRe.FindAllStringSubmatch(memo, -1) {
		hour, minute := matches[1], matches[2]
		if hour <= "23" && minute <= "59" {
			return hour + minute
		}
	}
	return ""
}

// EscapeSGML replaces the characters that terminate OFX element text. The
// ampersand must be replaced first.
func EscapeSGML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
