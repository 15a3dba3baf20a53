// Package models defines the data structures shared by the parsing, grouping
// and rendering stages of the converter.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrnType is an OFX transaction type as written into the TRNTYPE element.
type TrnType string

const (
	TrnTypeCredit      TrnType = "CREDIT"
	TrnTypeDebit       TrnType = "DEBIT"
	TrnTypePayment     TrnType = "PAYMENT"
	TrnTypePOS         TrnType = "POS"
	TrnTypeATM         TrnType = "ATM"
	TrnTypeDirectDebit TrnType = "DIRECTDEBIT"
	TrnTypeDirectDep   TrnType = "DIRECTDEP"
	TrnTypeRepeatPmt   TrnType = "REPEATPMT"
	TrnTypeCash        TrnType = "CASH"
	TrnTypeXfer        TrnType = "XFER"
	TrnTypeOther       TrnType = "OTHER"
)

var validTrnTypes = map[TrnType]struct{}{
	TrnTypeCredit:      {},
	TrnTypeDebit:       {},
	TrnTypePayment:     {},
	TrnTypePOS:         {},
	TrnTypeATM:         {},
	TrnTypeDirectDebit: {},
	TrnTypeDirectDep:   {},
	TrnTypeRepeatPmt:   {},
	TrnTypeCash:        {},
	TrnTypeXfer:        {},
	TrnTypeOther:       {},
}

// ParseTrnType converts a string to a TrnType. The second return value is
// false when the string is not a recognized OFX transaction type.
func ParseTrnType(s string) (TrnType, bool) {
	t := TrnType(s)
	_, ok := validTrnTypes[t]
	return t, ok
}

// Transaction represents a single booked statement line. The amount is
// already signed: debits are negative, credits positive.
type Transaction struct {
	Date                time.Time
	Amount              decimal.Decimal
	Account             string
	CounterpartyAccount string
	CounterpartyName    string
	Code                string
	Type                TrnType
	Description         string
	FitID               string

	// BalanceAfter is the account balance once this transaction was booked.
	// Only newer exports carry it; HasBalanceAfter reports availability.
	BalanceAfter    decimal.Decimal
	HasBalanceAfter bool
}

// IsDebit returns true if the transaction took money off the account
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction put money on the account
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
