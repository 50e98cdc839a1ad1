package handler

import (
	"errors"

	"go-pix-ranking/internal/export"
	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/service"

	"github.com/gofiber/fiber/v2"
)

var errUnknownFormat = errors.New("unknown export format, expected xlsx or csv")

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetSalesReport returns the date-filtered sales list plus totals
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	dateRange, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	sales, err := h.service.RecentSales(dateRange, c.QueryInt("limit", service.DefaultReportLimit))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report data"})
	}

	summary, err := h.service.Summary(dateRange)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report data"})
	}

	filtered := dateRange.StartDate != nil || dateRange.EndDate != nil
	response := fiber.Map{
		"sales": sales,
		"summary": fiber.Map{
			"total_sales":      summary.TotalSales,
			"total_amount":     summary.TotalAmount,
			"filtered_by_date": filtered,
		},
	}
	if filtered {
		response["period"] = fiber.Map{
			"start_date": dateRange.StartDate,
			"end_date":   dateRange.EndDate,
		}
	}
	return c.JSON(response)
}

// ExportSalesReport streams the ranking or sales report as xlsx or csv
func (h *ReportHandler) ExportSalesReport(c *fiber.Ctx) error {
	dateRange, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}

	reportType := c.Query("report", "ranking")
	format := c.Query("format", "xlsx")

	var fileName string
	var content []byte

	switch reportType {
	case "ranking":
		ranking, err := h.service.Ranking(dateRange)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
		}
		fileName = "pix-ranking"
		content, err = renderRanking(ranking, format)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

	case "sales":
		sales, err := h.service.RecentSales(dateRange, c.QueryInt("limit", service.DefaultReportLimit))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
		}
		fileName = "pix-sales"
		content, err = renderSales(sales, format)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown report type"})
	}

	switch format {
	case "xlsx":
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+fileName+`.xlsx`)
	case "csv":
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+fileName+`.csv`)
	}
	return c.Send(content)
}

func renderRanking(ranking []model.OperatorRanking, format string) ([]byte, error) {
	switch format {
	case "xlsx":
		workbook, err := export.RankingWorkbook(ranking)
		if err != nil {
			return nil, err
		}
		buf, err := workbook.WriteToBuffer()
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "csv":
		return export.RankingCSV(ranking)
	default:
		return nil, errUnknownFormat
	}
}

func renderSales(sales []model.SaleWithOperator, format string) ([]byte, error) {
	switch format {
	case "xlsx":
		workbook, err := export.SalesWorkbook(sales)
		if err != nil {
			return nil, err
		}
		buf, err := workbook.WriteToBuffer()
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "csv":
		return export.SalesCSV(sales)
	default:
		return nil, errUnknownFormat
	}
}
