package handlers

import (
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.service.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch properties")
	}

	filtered := services.FilterProperties(properties, c.Query("q"))
	return c.JSON(dto.PropertyListResponse{
		Properties: filtered,
		Total:      len(filtered),
	})
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid property ID")
	}

	property, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch property")
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	property, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondDomainError(c, err, "Failed to create property")
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid property ID")
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	property, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to update property")
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid property ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err, "Failed to delete property")
	}
	return c.JSON(dto.MessageResponse{Message: "Property deleted successfully"})
}
