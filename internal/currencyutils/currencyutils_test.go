package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Comma decimal separator", "50,00", decimal.NewFromFloat(50.00), false},
		{"Comma decimal with cents", "123,45", decimal.NewFromFloat(123.45), false},
		{"Thousands dot with comma decimal", "1.234,56", decimal.NewFromFloat(1234.56), false},
		{"Multiple thousands dots", "1.234.567,89", decimal.NewFromFloat(1234567.89), false},
		{"Plain dot decimal", "123.45", decimal.NewFromFloat(123.45), false},
		{"Negative comma decimal", "-123,45", decimal.NewFromFloat(-123.45), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"Euro symbol", "€1.234,56", decimal.NewFromFloat(1234.56), false},
		{"Surrounding whitespace", "  50,00  ", decimal.NewFromFloat(50.00), false},
		{"Empty string", "", decimal.Zero, true},
		{"Only whitespace", "   ", decimal.Zero, true},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Comma decimal separator", "123,45", "123.45"},
		{"Negative comma decimal", "-123,45", "-123.45"},
		{"Thousands dot with comma decimal", "1.234,56", "1234.56"},
		{"Multiple thousands dots", "1.234.567,89", "1234567.89"},
		{"Plain dot decimal untouched", "123.45", "123.45"},
		{"Euro symbol stripped", "€123,45", "123.45"},
		{"Surrounding whitespace", "  123,45  ", "123.45"},
		{"Empty string", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestFormatOFXAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"Negative amount keeps sign", decimal.NewFromFloat(-50), "-50.00"},
		{"Positive amount has no sign", decimal.NewFromFloat(1200), "1200.00"},
		{"Cents are preserved", decimal.NewFromFloat(12.5), "12.50"},
		{"Zero", decimal.Zero, "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatOFXAmount(tc.amount))
		})
	}
}
