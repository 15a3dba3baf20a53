// Package ingparser provides functionality to parse ING bank CSV exports.
package ingparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"ing2ofx/internal/currencyutils"
	"ing2ofx/internal/dateutils"
	"ing2ofx/internal/models"
	"ing2ofx/internal/parsererror"
	"ing2ofx/internal/textutils"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator used when reading exports. ING has used
// both commas and semicolons over the years.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input
func SetDelimiter(delim rune) {
	Delimiter = delim
}

const expectedFormat = "ING CSV"

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// requiredHeaders are the columns every ING export carries. Optional columns
// such as "Saldo na mutatie" and "Tag" only appear in newer exports.
var requiredHeaders = []string{
	"Datum",
	"Naam / Omschrijving",
	"Rekening",
	"Tegenrekening",
	"Code",
	"Af Bij",
	"Bedrag (EUR)",
	"Mededelingen",
}

// ingCSVRow maps one data row of an ING export. All fields stay strings here;
// conversion into typed values happens in convertRow.
type ingCSVRow struct {
	Date                string `csv:"Datum"`
	Name                string `csv:"Naam / Omschrijving"`
	Account             string `csv:"Rekening"`
	CounterpartyAccount string `csv:"Tegenrekening"`
	Code                string `csv:"Code"`
	Direction           string `csv:"Af Bij"`
	Amount              string `csv:"Bedrag (EUR)"`
	Notifications       string `csv:"Mededelingen"`
	BalanceAfter        string `csv:"Saldo na mutatie"`
	Tag                 string `csv:"Tag"`
}

// Direction indicator values used in the "Af Bij" column.
const (
	directionDebit  = "Af"
	directionCredit = "Bij"
)

// Parse reads an ING CSV export from an io.Reader into a Statement.
// Transactions keep their file order and carry signed amounts, resolved
// transaction types and generated FITIDs.
func Parse(r io.Reader) (*models.Statement, error) {
	log.Info("Reading ING CSV from reader")

	// Buffer the reader content so we can validate and parse from the same data
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	data, err = decodeText(data)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: expectedFormat,
			Msg:            err.Error(),
		}
	}

	if err := validateHeader(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	rows, err := readRows(bytes.NewReader(data))
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: expectedFormat,
			Msg:            fmt.Sprintf("malformed CSV data: %v", err),
		}
	}

	statement := &models.Statement{}
	fitids := newFITIDGenerator()

	for i, row := range rows {
		// Line 1 is the header row.
		line := i + 2

		tx, err := convertRow(row, line)
		if err != nil {
			return nil, err
		}

		tx.FitID = fitids.next(tx)

		if statement.AccountID == "" {
			statement.AccountID = tx.Account
		} else if tx.Account != statement.AccountID {
			// The export format carries one account per file; the statement
			// keeps the first one seen.
			log.WithFields(logrus.Fields{
				"line":    line,
				"account": tx.Account,
			}).Warn("Row booked on a different account than the statement")
		}
		statement.Transactions = append(statement.Transactions, tx)
	}

	log.WithField("count", len(statement.Transactions)).Info("Successfully parsed ING CSV data")
	return statement, nil
}

// ParseFile reads and parses an ING CSV export from a file.
func ParseFile(filePath string) (*models.Statement, error) {
	log.WithField("file", filePath).Info("Parsing ING CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	statement, err := Parse(file)
	if err != nil {
		var formatErr *parsererror.InvalidFormatError
		if errors.As(err, &formatErr) {
			if formatErr.FilePath == "(from reader)" {
				formatErr.FilePath = filePath
			}
			return nil, err
		}
		// Field level errors carry a line number but no file name.
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return statement, nil
}

// ValidateFormat checks whether the reader holds data in the ING CSV format.
// It inspects the header row only. The error return is reserved for I/O
// problems; an unrecognized format simply yields false.
func ValidateFormat(r io.Reader) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	data, err = decodeText(data)
	if err != nil {
		log.WithError(err).Debug("Input is not decodable text")
		return false, nil
	}

	if err := validateHeader(bytes.NewReader(data)); err != nil {
		log.WithError(err).Debug("ING CSV format validation failed")
		return false, nil
	}

	return true, nil
}

// decodeText returns the input as UTF-8. Exports from older tooling arrive in
// Latin-1, which decodes byte by byte. A leading byte order mark is dropped.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return data, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("input is neither valid UTF-8 nor Latin-1: %w", err)
	}
	return decoded, nil
}

// validateHeader reads the first record and checks the required columns.
func validateHeader(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &parsererror.InvalidFormatError{
				FilePath:       "(from reader)",
				ExpectedFormat: expectedFormat,
				Msg:            "file is empty",
			}
		}
		return &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: expectedFormat,
			Msg:            fmt.Sprintf("failed to read CSV header: %v", err),
		}
	}

	headerSet := make(map[string]bool, len(header))
	for _, h := range header {
		headerSet[strings.TrimSpace(h)] = true
	}

	for _, required := range requiredHeaders {
		if !headerSet[required] {
			return &parsererror.InvalidFormatError{
				FilePath:             "(from reader)",
				ExpectedFormat:       expectedFormat,
				ActualContentSnippet: strings.Join(header, ","),
				Msg:                  fmt.Sprintf("missing required header: %s", required),
			}
		}
	}

	return nil
}

// readRows unmarshals the CSV data into row structs using gocsv.
func readRows(r io.Reader) ([]ingCSVRow, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.Comma = Delimiter
		return reader
	})

	var rows []ingCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// convertRow turns a raw CSV row into a Transaction.
func convertRow(row ingCSVRow, line int) (models.Transaction, error) {
	date, err := dateutils.ParseStatementDate(row.Date)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Line:  line,
			Field: "Datum",
			Value: row.Date,
			Err:   err,
		}
	}

	amount, err := currencyutils.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Line:  line,
			Field: "Bedrag (EUR)",
			Value: row.Amount,
			Err:   err,
		}
	}

	// The amount column is unsigned; the direction column decides the sign.
	var signed decimal.Decimal
	switch strings.TrimSpace(row.Direction) {
	case directionDebit:
		signed = amount.Abs().Neg()
	case directionCredit:
		signed = amount.Abs()
	default:
		return models.Transaction{}, &parsererror.ParseError{
			Line:  line,
			Field: "Af Bij",
			Value: row.Direction,
			Err:   fmt.Errorf("unknown direction indicator, expected %q or %q", directionDebit, directionCredit),
		}
	}

	code := strings.TrimSpace(row.Code)
	trnType, known := resolveTrnType(code, signed.IsNegative())
	if !known {
		log.WithFields(logrus.Fields{
			"code": code,
			"line": line,
		}).Warn("Unknown transaction code, falling back to OTHER")
	}

	tx := models.Transaction{
		Date:                date,
		Amount:              signed,
		Account:             compactAccount(row.Account),
		CounterpartyAccount: compactAccount(row.CounterpartyAccount),
		CounterpartyName:    textutils.CollapseWhitespace(row.Name),
		Code:                code,
		Type:                trnType,
		Description:         textutils.JoinSegments(row.Notifications, row.Tag),
	}

	if balanceStr := strings.TrimSpace(row.BalanceAfter); balanceStr != "" {
		balance, err := currencyutils.ParseAmount(balanceStr)
		if err != nil {
			// The balance column is informational; a bad value should not
			// sink the whole conversion.
			log.WithFields(logrus.Fields{
				"value": balanceStr,
				"line":  line,
			}).Warn("Ignoring unparseable balance value")
		} else {
			tx.BalanceAfter = balance
			tx.HasBalanceAfter = true
		}
	}

	return tx, nil
}

// compactAccount normalizes an account number by dropping all spaces, so that
// "NL20 INGB 0001 2345 67" and "NL20INGB0001234567" identify the same account.
func compactAccount(account string) string {
	return strings.ReplaceAll(strings.TrimSpace(account), " ", "")
}
