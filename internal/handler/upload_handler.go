package handler

import (
	"errors"
	"io"
	"strings"

	"go-pix-ranking/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MaxLedgerSize caps ledger uploads at 5 MB
const MaxLedgerSize = 5 * 1024 * 1024

type UploadHandler struct {
	service service.IngestService
}

func NewUploadHandler(s service.IngestService) *UploadHandler {
	return &UploadHandler{service: s}
}

func (h *UploadHandler) UploadLedger(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file was uploaded"})
	}

	if fileHeader.Size > MaxLedgerSize {
		return c.Status(400).JSON(fiber.Map{"error": "File is too large. Maximum size is 5MB"})
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return c.Status(400).JSON(fiber.Map{"error": "File must be a valid CSV"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}

	report, err := h.service.ProcessLedger(string(content))
	if err != nil {
		if errors.Is(err, service.ErrMalformedLedger) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to process the CSV file"})
	}

	return c.JSON(fiber.Map{
		"report":  report,
		"message": "Previous data has been replaced by the new records",
	})
}
