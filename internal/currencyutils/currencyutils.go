// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles the Dutch notation used in bank exports ("50,00", "1.234,56") as
// well as plain dot-decimal strings.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts a Dutch-notation amount string to a form accepted
// by decimal.NewFromString. Thousands dots are dropped and the decimal comma
// becomes a decimal point.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.TrimPrefix(amountStr, "€")
	amountStr = strings.TrimSpace(amountStr)

	if strings.Contains(amountStr, ",") {
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return amountStr
}

// FormatOFXAmount renders a decimal with two decimal places, the way amounts
// appear in TRNAMT and BALAMT elements.
func FormatOFXAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
