package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column headers as emitted by the Sitef PIX export
const (
	colDate     = "Data Sitef"
	colOperator = "Operador"
	colProduct  = "Produto"
	colAmount   = "Valor"
)

// ErrMalformedLedger means the upload could not be parsed into rows at all.
// Row-level problems never produce this error; they are counted and skipped.
var ErrMalformedLedger = errors.New("malformed ledger file")

// ledgerRow carries the raw cell values of one data line
type ledgerRow struct {
	Date         string
	Registration string
	Product      string
	Amount       string
}

// parseLedger splits the semicolon-delimited upload into raw rows, keyed by
// the expected header names. Extra columns are tolerated, missing required
// headers and structural delimiter failures abort the whole run.
func parseLedger(content string) ([]ledgerRow, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedLedger)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colOperator, colProduct, colAmount} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedLedger, required)
		}
	}

	cell := func(record []string, column string) string {
		i := index[column]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []ledgerRow
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLedger, line, err)
		}
		rows = append(rows, ledgerRow{
			Date:         cell(record, colDate),
			Registration: cell(record, colOperator),
			Product:      cell(record, colProduct),
			Amount:       cell(record, colAmount),
		})
	}
	return rows, nil
}

// parseSaleDate converts the DD-MM-YYYY source format into a calendar date.
// Anything that does not decompose into three dash-separated components is
// rejected.
func parseSaleDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if len(strings.Split(trimmed, "-")) != 3 {
		return time.Time{}, fmt.Errorf("date %q is not DD-MM-YYYY", value)
	}
	return time.Parse("02-01-2006", trimmed)
}

// parseAmount converts the comma-decimal source format into a decimal value.
// Unparsable, zero and negative amounts are rejected.
func parseAmount(value string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not positive", value)
	}
	return amount, nil
}
