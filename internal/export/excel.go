package export

import (
	"fmt"

	"go-pix-ranking/internal/model"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// RankingWorkbook renders the operator ranking as an xlsx workbook
func RankingWorkbook(ranking []model.OperatorRanking) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	f.SetCellValue(sheetName, "A1", "Operator")
	f.SetCellValue(sheetName, "B1", "Registration")
	f.SetCellValue(sheetName, "C1", "SalesCount")
	f.SetCellValue(sheetName, "D1", "TotalAmount")

	for i, entry := range ranking {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), entry.Name)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), entry.RegistrationNumber)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), entry.SalesCount)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), entry.TotalAmount.InexactFloat64())
	}

	return f, nil
}

// SalesWorkbook renders the sales report as an xlsx workbook
func SalesWorkbook(sales []model.SaleWithOperator) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	f.SetCellValue(sheetName, "A1", "Date")
	f.SetCellValue(sheetName, "B1", "Operator")
	f.SetCellValue(sheetName, "C1", "Registration")
	f.SetCellValue(sheetName, "D1", "Product")
	f.SetCellValue(sheetName, "E1", "Amount")

	for i, sale := range sales {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), sale.SaleDate.Format("02-01-2006"))
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), sale.OperatorName)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), sale.OperatorRegistration)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), sale.Product)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(row), sale.Amount.InexactFloat64())
	}

	return f, nil
}
