package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"go-pix-ranking/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OperatorHandler struct {
	service service.OperatorService
}

func NewOperatorHandler(s service.OperatorService) *OperatorHandler {
	return &OperatorHandler{service: s}
}

// readImage pulls the optional profileImage file out of the multipart form
func readImage(c *fiber.Ctx) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		// field absent: no image was sent
		return nil, nil
	}
	return imageFromHeader(fileHeader)
}

func imageFromHeader(fileHeader *multipart.FileHeader) (*service.ImageUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.ImageUpload{Filename: fileHeader.Filename, Data: data}, nil
}

func (h *OperatorHandler) GetOperators(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	skip := c.QueryInt("skip", 0)

	list, err := h.service.List(limit, skip)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch operators"})
	}
	return c.JSON(list)
}

func (h *OperatorHandler) GetOperator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	operator, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrOperatorNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Operator not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch operator"})
	}
	return c.JSON(operator)
}

func (h *OperatorHandler) CreateOperator(c *fiber.Ctx) error {
	image, err := readImage(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid profile image"})
	}

	operator, err := h.service.Create(service.CreateOperatorRequest{
		Name:               c.FormValue("name"),
		RegistrationNumber: c.FormValue("registrationNumber"),
		Image:              image,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRegistration) {
			return c.Status(409).JSON(fiber.Map{"error": "An operator with this registration number already exists"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(operator)
}

func (h *OperatorHandler) UpdateOperator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	image, err := readImage(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid profile image"})
	}

	operator, err := h.service.Update(id, service.UpdateOperatorRequest{
		Name:               c.FormValue("name"),
		RegistrationNumber: c.FormValue("registrationNumber"),
		Image:              image,
		KeepExistingImage:  c.FormValue("keepExistingImage") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOperatorNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Operator not found"})
		case errors.Is(err, service.ErrDuplicateRegistration):
			return c.Status(409).JSON(fiber.Map{"error": "An operator with this registration number already exists"})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(operator)
}

func (h *OperatorHandler) DeleteOperator(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid operator ID"})
	}

	if err := h.service.Delete(id); err != nil {
		var inUse *service.OperatorInUseError
		switch {
		case errors.Is(err, service.ErrOperatorNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Operator not found"})
		case errors.As(err, &inUse):
			return c.Status(409).JSON(fiber.Map{
				"error":       "Cannot delete operator: sales records reference it",
				"sales_count": inUse.SalesCount,
			})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete operator"})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
