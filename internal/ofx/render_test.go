package ofx

import (
	"strings"
	"testing"
	"time"

	"ing2ofx/internal/models"
	"ing2ofx/internal/xmlutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var renderStamp = time.Date(2018, time.December, 15, 12, 0, 0, 0, time.UTC)

func testRenderer() *Renderer {
	r := NewRenderer()
	r.Now = fixedClock(renderStamp)
	return r
}

func paymentTx() models.Transaction {
	return models.Transaction{
		Date:             time.Date(2018, time.November, 1, 0, 0, 0, 0, time.UTC),
		Amount:           decimal.NewFromFloat(-50.00),
		Account:          "NL20INGB0001234567",
		CounterpartyName: "AH to go Utrecht",
		Code:             "GT",
		Type:             models.TrnTypePayment,
		Description:      "Betaling 01-11-2018 14:30 pasnr. 008",
		FitID:            "2018110114305000",
	}
}

func salaryTx() models.Transaction {
	return models.Transaction{
		Date:                time.Date(2018, time.November, 15, 0, 0, 0, 0, time.UTC),
		Amount:              decimal.NewFromFloat(1200.00),
		Account:             "NL20INGB0001234567",
		CounterpartyAccount: "NL99BANK0123456789",
		CounterpartyName:    "Werkgever BV",
		Code:                "ID",
		Type:                models.TrnTypeDirectDep,
		Description:         "Salaris november",
		FitID:               "NL99BANK012345678920181115120000",
	}
}

const goldenDocument = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
   <SIGNONMSGSRSV1>
      <SONRS>
         <STATUS>
            <CODE>0</CODE>
            <SEVERITY>INFO</SEVERITY>
         </STATUS>
         <DTSERVER>20181215120000</DTSERVER>
         <LANGUAGE>ENG</LANGUAGE>
         <DTPROFUP>20181215120000</DTPROFUP>
         <DTACCTUP>20181215120000</DTACCTUP>
         <FI>
            <ORG>NCH</ORG>
            <FID>1001</FID>
         </FI>
      </SONRS>
   </SIGNONMSGSRSV1>
   <BANKMSGSRSV1>
      <STMTTRNRS>
         <TRNUID>1001</TRNUID>
         <STATUS>
            <CODE>0</CODE>
            <SEVERITY>INFO</SEVERITY>
         </STATUS>
         <STMTRS>
            <CURDEF>EUR</CURDEF>
            <BANKACCTFROM>
               <BANKID>121099999</BANKID>
               <ACCTID>NL20INGB0001234567</ACCTID>
               <ACCTTYPE>CHECKING</ACCTTYPE>
            </BANKACCTFROM>
            <BANKTRANLIST>
               <DTSTART>20181101</DTSTART>
               <DTEND>20181101</DTEND>
               <STMTTRN>
                  <TRNTYPE>PAYMENT</TRNTYPE>
                  <DTPOSTED>20181101</DTPOSTED>
                  <TRNAMT>-50.00</TRNAMT>
                  <FITID>2018110114305000</FITID>
                  <NAME>AH to go Utrecht</NAME>
                  <BANKACCTTO>
                     <BANKID></BANKID>
                     <ACCTID></ACCTID>
                     <ACCTTYPE>CHECKING</ACCTTYPE>
                  </BANKACCTTO>
                  <MEMO>Betaling 01-11-2018 14:30 pasnr. 008</MEMO>
               </STMTTRN>
            </BANKTRANLIST>
            <LEDGERBAL>
               <BALAMT>0.00</BALAMT>
               <DTASOF>20181101</DTASOF>
            </LEDGERBAL>
         </STMTRS>
      </STMTTRNRS>
   </BANKMSGSRSV1>
</OFX>
`

func TestRender_GoldenDocument(t *testing.T) {
	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{paymentTx()},
	}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)
	assert.Equal(t, goldenDocument, doc)
}

func TestRender_DocumentStructure(t *testing.T) {
	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{paymentTx(), salaryTx()},
	}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)

	root, err := xmlutils.ParseOFX(doc)
	require.NoError(t, err)

	extract := func(xpath string) []string {
		values, err := xmlutils.ExtractFromXML(root, xpath)
		require.NoError(t, err)
		return values
	}

	assert.Equal(t, []string{"20181215120000"}, extract(xmlutils.XPathDTServer))
	assert.Equal(t, []string{"EUR"}, extract(xmlutils.XPathCurrency))
	assert.Equal(t, []string{"121099999"}, extract(xmlutils.XPathBankID))
	assert.Equal(t, []string{"NL20INGB0001234567"}, extract(xmlutils.XPathAccountID))
	assert.Equal(t, []string{"20181101"}, extract(xmlutils.XPathDTStart))
	assert.Equal(t, []string{"20181115"}, extract(xmlutils.XPathDTEnd))
	assert.Equal(t, []string{"PAYMENT", "DIRECTDEP"}, extract(xmlutils.XPathTrnType))
	assert.Equal(t, []string{"-50.00", "1200.00"}, extract(xmlutils.XPathTrnAmt))
	assert.Equal(t, []string{"20181101", "20181115"}, extract(xmlutils.XPathDTPosted))
	assert.Equal(t, []string{"2018110114305000", "NL99BANK012345678920181115120000"}, extract(xmlutils.XPathFitID))
	assert.Equal(t, []string{"", "NL99BANK0123456789"}, extract(xmlutils.XPathAccountTo))
	assert.Equal(t, []string{"0.00"}, extract(xmlutils.XPathBalAmt))
	assert.Equal(t, []string{"20181115"}, extract(xmlutils.XPathDTAsOf))
}

func TestRender_OnlyServerDateVaries(t *testing.T) {
	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{paymentTx(), salaryTx()},
	}

	first, err := testRenderer().Render(group)
	require.NoError(t, err)

	again, err := testRenderer().Render(group)
	require.NoError(t, err)
	assert.Equal(t, first, again, "same clock must reproduce the identical document")

	later := NewRenderer()
	later.Now = fixedClock(renderStamp.Add(48 * time.Hour))
	shifted, err := later.Render(group)
	require.NoError(t, err)
	assert.NotEqual(t, first, shifted)

	// Substituting the conversion timestamp back must make the documents
	// identical; nothing else may depend on the clock.
	normalized := strings.ReplaceAll(shifted, "20181217120000", "20181215120000")
	assert.Equal(t, first, normalized)
}

func TestRender_EscapesText(t *testing.T) {
	tx := paymentTx()
	tx.CounterpartyName = "Marks & Spencer <NL>"
	tx.Description = "terug > heen & weer"

	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{tx},
	}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)

	assert.Contains(t, doc, "<NAME>Marks &amp; Spencer &lt;NL&gt;</NAME>")
	assert.Contains(t, doc, "<MEMO>terug &gt; heen &amp; weer</MEMO>")

	// The escaped document stays parseable and round-trips the text.
	root, err := xmlutils.ParseOFX(doc)
	require.NoError(t, err)
	names, err := xmlutils.ExtractFromXML(root, xmlutils.XPathName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Marks & Spencer <NL>"}, names)
}

func TestRender_UnknownPayeeFallback(t *testing.T) {
	tx := paymentTx()
	tx.CounterpartyName = ""

	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{tx},
	}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)
	assert.Contains(t, doc, "<NAME>UNKNOWN</NAME>")
}

func TestRender_EmptyGroup(t *testing.T) {
	group := models.Group{AccountID: "NL20INGB0001234567"}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)

	root, err := xmlutils.ParseOFX(doc)
	require.NoError(t, err)

	trnTypes, err := xmlutils.ExtractFromXML(root, xmlutils.XPathTrnType)
	require.NoError(t, err)
	assert.Empty(t, trnTypes, "empty group renders no STMTTRN aggregates")

	starts, err := xmlutils.ExtractFromXML(root, xmlutils.XPathDTStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"20181215"}, starts, "conversion date stands in for an empty range")

	ends, err := xmlutils.ExtractFromXML(root, xmlutils.XPathDTEnd)
	require.NoError(t, err)
	assert.Equal(t, []string{"20181215"}, ends)
}

func TestRender_LedgerBalanceFromExport(t *testing.T) {
	older := paymentTx()
	older.BalanceAfter = decimal.NewFromFloat(950.00)
	older.HasBalanceAfter = true

	newer := salaryTx()
	newer.BalanceAfter = decimal.NewFromFloat(2150.00)
	newer.HasBalanceAfter = true

	// File order newest-first; the balance of the latest booked transaction
	// must win regardless.
	group := models.Group{
		AccountID:    "NL20INGB0001234567",
		Transactions: []models.Transaction{newer, older},
	}

	doc, err := testRenderer().Render(group)
	require.NoError(t, err)

	root, err := xmlutils.ParseOFX(doc)
	require.NoError(t, err)

	balances, err := xmlutils.ExtractFromXML(root, xmlutils.XPathBalAmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"2150.00"}, balances)

	asOf, err := xmlutils.ExtractFromXML(root, xmlutils.XPathDTAsOf)
	require.NoError(t, err)
	assert.Equal(t, []string{"20181115"}, asOf)
}

func TestRender_CustomSignonValues(t *testing.T) {
	r := testRenderer()
	r.BankID = "INGBNL2A"
	r.Currency = "USD"
	r.Org = "ING"
	r.FID = "4321"

	doc, err := r.Render(models.Group{AccountID: "X"})
	require.NoError(t, err)

	assert.Contains(t, doc, "<BANKID>INGBNL2A</BANKID>")
	assert.Contains(t, doc, "<CURDEF>USD</CURDEF>")
	assert.Contains(t, doc, "<ORG>ING</ORG>")
	assert.Contains(t, doc, "<FID>4321</FID>")
}
