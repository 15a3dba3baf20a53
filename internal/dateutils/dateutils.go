// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutING is the day-month-year layout of current ING exports.
	DateLayoutING = "02-01-2006"
	// DateLayoutCompact is the undelimited layout found in older exports.
	DateLayoutCompact = "20060102"
	// OFXDateLayout renders a date for OFX elements such as DTPOSTED.
	OFXDateLayout = "20060102"
	// OFXTimestampLayout renders a full timestamp for OFX elements such as DTSERVER.
	OFXTimestampLayout = "20060102150405"
	// MonthKeyLayout identifies a calendar month, e.g. "201811".
	MonthKeyLayout = "200601"
)

// statementFormats lists the accepted layouts for statement dates. Anything
// else is rejected rather than guessed at, so that day/month ambiguity can
// never flip silently.
var statementFormats = []string{
	DateLayoutING,
	DateLayoutCompact,
}

// ParseStatementDate parses a date cell from a statement row.
func ParseStatementDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)

	for _, format := range statementFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatOFXDate formats a time.Time as an OFX date (YYYYMMDD).
func FormatOFXDate(date time.Time) string {
	return date.Format(OFXDateLayout)
}

// FormatOFXTimestamp formats a time.Time as an OFX timestamp (YYYYMMDDHHMMSS).
func FormatOFXTimestamp(date time.Time) string {
	return date.Format(OFXTimestampLayout)
}

// ToMonthKey returns the calendar month of a date as "YYYYMM".
func ToMonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	// Trim whitespace
	dateStr = strings.TrimSpace(dateStr)

	// Replace multiple spaces with a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}
