// Package xmlutils provides helpers for inspecting generated OFX documents.
package xmlutils

// XPath expressions for the elements of an OFX 1.02 bank statement response.
const (
	XPathDTServer = "/OFX/SIGNONMSGSRSV1/SONRS/DTSERVER"
	XPathOrg      = "/OFX/SIGNONMSGSRSV1/SONRS/FI/ORG"
	XPathFID      = "/OFX/SIGNONMSGSRSV1/SONRS/FI/FID"

	XPathCurrency  = "/OFX/BANKMSGSRSV1/STMTTRNRS/STMTRS/CURDEF"
	XPathBankID    = "/OFX/BANKMSGSRSV1/STMTTRNRS/STMTRS/BANKACCTFROM/BANKID"
	XPathAccountID = "/OFX/BANKMSGSRSV1/STMTTRNRS/STMTRS/BANKACCTFROM/ACCTID"

	XPathDTStart = "//BANKTRANLIST/DTSTART"
	XPathDTEnd   = "//BANKTRANLIST/DTEND"

	XPathTrnType   = "//STMTTRN/TRNTYPE"
	XPathDTPosted  = "//STMTTRN/DTPOSTED"
	XPathTrnAmt    = "//STMTTRN/TRNAMT"
	XPathFitID     = "//STMTTRN/FITID"
	XPathName      = "//STMTTRN/NAME"
	XPathAccountTo = "//STMTTRN/BANKACCTTO/ACCTID"
	XPathMemo      = "//STMTTRN/MEMO"

	XPathBalAmt = "//LEDGERBAL/BALAMT"
	XPathDTAsOf = "//LEDGERBAL/DTASOF"
)
