// Package ofx renders transaction groups as OFX 1.02 SGML documents.
package ofx

import (
	"bytes"
	"fmt"
	"time"

	"ing2ofx/internal/currencyutils"
	"ing2ofx/internal/dateutils"
	"ing2ofx/internal/models"
	"ing2ofx/internal/textutils"
)

// Defaults for the signon and statement boilerplate. The bank routing ID is a
// placeholder: Dutch accounts are identified by IBAN, not by routing number,
// but the element is mandatory in OFX 1.02.
const (
	DefaultBankID   = "121099999"
	DefaultCurrency = "EUR"
	DefaultOrg      = "NCH"
	DefaultFID      = "1001"
)

// Renderer turns transaction groups into OFX documents. The zero value is not
// useful; construct one with NewRenderer and override fields as needed.
type Renderer struct {
	BankID   string
	Currency string
	Org      string
	FID      string

	// Now supplies the conversion timestamp written to DTSERVER, DTPROFUP
	// and DTACCTUP. It exists so tests can pin the clock. When nil,
	// time.Now is used.
	Now func() time.Time
}

// NewRenderer creates a Renderer with the default signon values.
func NewRenderer() *Renderer {
	return &Renderer{
		BankID:   DefaultBankID,
		Currency: DefaultCurrency,
		Org:      DefaultOrg,
		FID:      DefaultFID,
	}
}

func (r *Renderer) clock() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Render produces one complete OFX document for a group. Apart from the
// conversion timestamp in the signon block, the output depends only on the
// group's content, so rendering the same group twice gives identical
// documents.
func (r *Renderer) Render(group models.Group) (string, error) {
	now := r.clock()

	doc := document{
		Stamp:     dateutils.FormatOFXTimestamp(now),
		Org:       r.Org,
		FID:       r.FID,
		Currency:  r.Currency,
		BankID:    r.BankID,
		AccountID: textutils.EscapeSGML(group.AccountID),
	}

	dateRange := group.DateRange()
	if dateRange.IsZero() {
		// A group without transactions still needs a valid date range; the
		// conversion date stands in.
		day := dateutils.FormatOFXDate(now)
		doc.Start, doc.End = day, day
	} else {
		doc.Start = dateutils.FormatOFXDate(dateRange.Start)
		doc.End = dateutils.FormatOFXDate(dateRange.End)
	}

	doc.Balance, doc.BalanceAt = ledgerBalance(group, doc.End)

	doc.Transactions = make([]stmtTrn, 0, len(group.Transactions))
	for _, tx := range group.Transactions {
		doc.Transactions = append(doc.Transactions, renderTransaction(tx))
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("error rendering OFX document: %w", err)
	}

	return buf.String(), nil
}

// ledgerBalance derives the LEDGERBAL values. When the export carries a
// "Saldo na mutatie" column, the balance after the latest booked transaction
// is the ledger balance at the end of the covered range. Otherwise a zero
// balance is written, which importing software treats as "unknown".
func ledgerBalance(group models.Group, end string) (balance, asOf string) {
	balance = "0.00"
	asOf = end

	var latest *models.Transaction
	for i := range group.Transactions {
		tx := &group.Transactions[i]
		if !tx.HasBalanceAfter {
			continue
		}
		// On equal dates the row that appears later in the export wins.
		if latest == nil || !tx.Date.Before(latest.Date) {
			latest = tx
		}
	}

	if latest != nil {
		balance = currencyutils.FormatOFXAmount(latest.BalanceAfter)
	}
	return balance, asOf
}

// unknownPayee fills the mandatory NAME element for rows without a
// counterparty name.
const unknownPayee = "UNKNOWN"

func renderTransaction(tx models.Transaction) stmtTrn {
	name := tx.CounterpartyName
	if name == "" {
		name = unknownPayee
	}
	return stmtTrn{
		Type:      string(tx.Type),
		Posted:    dateutils.FormatOFXDate(tx.Date),
		Amount:    currencyutils.FormatOFXAmount(tx.Amount),
		FitID:     tx.FitID,
		Name:      textutils.EscapeSGML(name),
		AccountTo: textutils.EscapeSGML(tx.CounterpartyAccount),
		Memo:      textutils.EscapeSGML(tx.Description),
	}
}
