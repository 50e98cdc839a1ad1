package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"go-pix-ranking/internal/model"
)

// CSV exports use the same semicolon delimiter as the ingestion format, so a
// downloaded report round-trips through the same spreadsheet locale settings.

func RankingCSV(ranking []model.OperatorRanking) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	if err := writer.Write([]string{"Operator", "Registration", "SalesCount", "TotalAmount"}); err != nil {
		return nil, err
	}
	for _, entry := range ranking {
		record := []string{
			entry.Name,
			entry.RegistrationNumber,
			strconv.FormatInt(entry.SalesCount, 10),
			entry.TotalAmount.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func SalesCSV(sales []model.SaleWithOperator) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	if err := writer.Write([]string{"Date", "Operator", "Registration", "Product", "Amount"}); err != nil {
		return nil, err
	}
	for _, sale := range sales {
		record := []string{
			sale.SaleDate.Format("02-01-2006"),
			sale.OperatorName,
			sale.OperatorRegistration,
			sale.Product,
			sale.Amount.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}
