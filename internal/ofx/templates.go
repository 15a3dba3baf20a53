package ofx

import "text/template"

// document collects everything the template needs, pre-formatted: dates and
// amounts are already strings and text fields are already escaped.
type document struct {
	Stamp        string
	Org          string
	FID          string
	Currency     string
	BankID       string
	AccountID    string
	Start        string
	End          string
	Balance      string
	BalanceAt    string
	Transactions []stmtTrn
}

// stmtTrn is one STMTTRN aggregate.
type stmtTrn struct {
	Type      string
	Posted    string
	Amount    string
	FitID     string
	Name      string
	AccountTo string
	Memo      string
}

var documentTemplate = template.Must(template.New("ofx").Parse(documentText))

// documentText is a complete OFX 1.02 response: the SGML prolog, an
// unauthenticated signon, and a single bank statement response. Importing
// software is picky about this layout, change it with care.
const documentText = `OFXHEADER:100
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
         <DTSERVER>{{.Stamp}}</DTSERVER>
         <LANGUAGE>ENG</LANGUAGE>
         <DTPROFUP>{{.Stamp}}</DTPROFUP>
         <DTACCTUP>{{.Stamp}}</DTACCTUP>
         <FI>
            <ORG>{{.Org}}</ORG>
            <FID>{{.FID}}</FID>
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
            <CURDEF>{{.Currency}}</CURDEF>
            <BANKACCTFROM>
               <BANKID>{{.BankID}}</BANKID>
               <ACCTID>{{.AccountID}}</ACCTID>
               <ACCTTYPE>CHECKING</ACCTTYPE>
            </BANKACCTFROM>
            <BANKTRANLIST>
               <DTSTART>{{.Start}}</DTSTART>
               <DTEND>{{.End}}</DTEND>
{{range .Transactions}}               <STMTTRN>
                  <TRNTYPE>{{.Type}}</TRNTYPE>
                  <DTPOSTED>{{.Posted}}</DTPOSTED>
                  <TRNAMT>{{.Amount}}</TRNAMT>
                  <FITID>{{.FitID}}</FITID>
                  <NAME>{{.Name}}</NAME>
                  <BANKACCTTO>
                     <BANKID></BANKID>
                     <ACCTID>{{.AccountTo}}</ACCTID>
                     <ACCTTYPE>CHECKING</ACCTTYPE>
                  </BANKACCTTO>
                  <MEMO>{{.Memo}}</MEMO>
               </STMTTRN>
{{end}}            </BANKTRANLIST>
            <LEDGERBAL>
               <BALAMT>{{.Balance}}</BALAMT>
               <DTASOF>{{.BalanceAt}}</DTASOF>
            </LEDGERBAL>
         </STMTRS>
      </STMTTRNRS>
   </BANKMSGSRSV1>
</OFX>
`
