package ingparser

import (
	"strconv"
	"strings"

	"ing2ofx/internal/currencyutils"
	"ing2ofx/internal/dateutils"
	"ing2ofx/internal/models"
	"ing2ofx/internal/textutils"

	"github.com/shopspring/decimal"
)

// fitidGenerator derives FITID values from transaction content, so that two
// runs over the same export produce the same IDs. Banks deduplicate imports
// on FITID, which is why duplicates within one run get a counter suffix.
type fitidGenerator struct {
	issued map[string]struct{}
}

func newFITIDGenerator() *fitidGenerator {
	return &fitidGenerator{issued: make(map[string]struct{})}
}

// next returns the FITID for tx. The base is the counterparty account, the
// posting date, the clock time scraped from the memo when one is present, and
// the digits of the amount.
func (g *fitidGenerator) next(tx models.Transaction) string {
	base := tx.CounterpartyAccount +
		dateutils.FormatOFXDate(tx.Date) +
		textutils.ExtractTimeOfDay(tx.Description) +
		amountDigits(tx.Amount)

	id := base
	for n := 1; ; n++ {
		if _, taken := g.issued[id]; !taken {
			break
		}
		id = base + strconv.Itoa(n)
	}

	g.issued[id] = struct{}{}
	return id
}

// amountDigits reduces an amount to its digits: sign and decimal point are
// stripped from the two-decimal rendering, so -50.00 becomes "5000".
func amountDigits(amount decimal.Decimal) string {
	s := currencyutils.FormatOFXAmount(amount)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, ".", "")
}
