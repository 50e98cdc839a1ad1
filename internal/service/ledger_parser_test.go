package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLedger(t *testing.T) {
	content := "Data Sitef;Operador;Produto;Valor\n" +
		"10-01-2023;100;Pix;125,50\n" +
		"11-01-2023;200;Pix;50,00\n"

	rows, err := parseLedger(content)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "10-01-2023", rows[0].Date)
	assert.Equal(t, "100", rows[0].Registration)
	assert.Equal(t, "Pix", rows[0].Product)
	assert.Equal(t, "125,50", rows[0].Amount)
}

func TestParseLedgerToleratesExtraColumns(t *testing.T) {
	content := "Data Sitef;Operador;Produto;Valor;Terminal\n" +
		"10-01-2023;100;Pix;125,50;T01\n"

	rows, err := parseLedger(content)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Registration)
}

func TestParseLedgerShortRowYieldsEmptyCells(t *testing.T) {
	content := "Data Sitef;Operador;Produto;Valor\n" +
		"10-01-2023;100\n"

	rows, err := parseLedger(content)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Amount)
}

func TestParseLedgerEmptyContent(t *testing.T) {
	_, err := parseLedger("")
	assert.ErrorIs(t, err, ErrMalformedLedger)
}

func TestParseLedgerMissingColumn(t *testing.T) {
	content := "Data Sitef;Operador;Valor\n10-01-2023;100;125,50\n"

	_, err := parseLedger(content)
	assert.ErrorIs(t, err, ErrMalformedLedger)
}

func TestParseLedgerStructuralFailure(t *testing.T) {
	content := "Data Sitef;Operador;Produto;Valor\n" +
		"10-01-2023;\"unterminated;Pix;125,50\n"

	_, err := parseLedger(content)
	assert.ErrorIs(t, err, ErrMalformedLedger)
}

func TestParseLedgerSkipsEmptyLines(t *testing.T) {
	content := "Data Sitef;Operador;Produto;Valor\n" +
		"\n" +
		"10-01-2023;100;Pix;125,50\n" +
		"\n"

	rows, err := parseLedger(content)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseSaleDate(t *testing.T) {
	parsed, err := parseSaleDate("10-01-2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), parsed)

	for _, invalid := range []string{"", "10/01/2023", "10-01", "2023", "aa-bb-cccc", "32-01-2023"} {
		_, err := parseSaleDate(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("125,50")
	require.NoError(t, err)
	assert.Equal(t, "125.50", amount.StringFixed(2))

	amount, err = parseAmount("99")
	require.NoError(t, err)
	assert.Equal(t, "99.00", amount.StringFixed(2))

	for _, invalid := range []string{"", "abc", "0,00", "-10,50"} {
		_, err := parseAmount(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}
