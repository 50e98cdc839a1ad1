package handler

import (
	"time"

	"go-pix-ranking/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.ReportService
}

func NewSalesHandler(s service.ReportService) *SalesHandler {
	return &SalesHandler{service: s}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func dateRangeFromQuery(c *fiber.Ctx) (service.DateRange, error) {
	startDate, err := parseDateQuery(c, "startDate")
	if err != nil {
		return service.DateRange{}, err
	}
	endDate, err := parseDateQuery(c, "endDate")
	if err != nil {
		return service.DateRange{}, err
	}
	return service.DateRange{StartDate: startDate, EndDate: endDate}, nil
}

// GetSales feeds the dashboard: ranking statistics, the recent-sales feed, or
// both, always together with the overall summary.
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	summary, err := h.service.Summary(service.DateRange{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
	}

	switch c.Query("mode") {
	case "statistics":
		statistics, err := h.service.Ranking(service.DateRange{})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
		}
		return c.JSON(fiber.Map{"statistics": statistics, "summary": summary})

	case "recent":
		recent, err := h.service.RecentSales(service.DateRange{}, c.QueryInt("limit", service.DefaultRecentLimit))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
		}
		return c.JSON(fiber.Map{"recent_sales": recent, "summary": summary})

	default:
		statistics, err := h.service.Ranking(service.DateRange{})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
		}
		recent, err := h.service.RecentSales(service.DateRange{}, 10)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
		}
		return c.JSON(fiber.Map{"statistics": statistics, "recent_sales": recent, "summary": summary})
	}
}
