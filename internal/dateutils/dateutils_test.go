package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatementDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"Day-month-year", "01-11-2018", true, 2018, time.November, 1},
		{"Compact", "20181101", true, 2018, time.November, 1},
		{"Compact from older exports", "20150623", true, 2015, time.June, 23},
		{"Surrounding whitespace", "  15-01-2019 ", true, 2019, time.January, 15},
		{"ISO is not accepted", "2018-11-01", false, 0, 0, 0},
		{"Month out of range", "01-13-2018", false, 0, 0, 0},
		{"Day out of range", "32-01-2018", false, 0, 0, 0},
		{"Unpadded day", "1-11-2018", false, 0, 0, 0},
		{"Empty string", "", false, 0, 0, 0},
		{"Not a date", "Af", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseStatementDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatOFXDate(t *testing.T) {
	date := time.Date(2018, time.November, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "20181101", FormatOFXDate(date))
}

func TestFormatOFXTimestamp(t *testing.T) {
	date := time.Date(2018, time.December, 2, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, "20181202090559", FormatOFXTimestamp(date))
}

func TestToMonthKey(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"November", time.Date(2018, time.November, 30, 0, 0, 0, 0, time.UTC), "201811"},
		{"Single-digit month is padded", time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC), "201903"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToMonthKey(tc.date))
		})
	}
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Already clean", "01-11-2018", "01-11-2018"},
		{"With spaces", "  01-11-2018  ", "01-11-2018"},
		{"Multiple inner spaces", "01  11  2018", "01 11 2018"},
		{"Empty string", "", ""},
		{"Only whitespace", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanDateString(tc.input))
		})
	}
}
