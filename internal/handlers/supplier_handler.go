package handlers

import (
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service *services.SupplierService
}

func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch suppliers")
	}

	filtered := services.FilterSuppliers(suppliers, c.Query("q"))
	return c.JSON(dto.SupplierListResponse{
		Suppliers: filtered,
		Total:     len(filtered),
	})
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}

	supplier, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch supplier")
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	supplier, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondDomainError(c, err, "Failed to create supplier")
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}

	var req dto.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	supplier, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to update supplier")
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err, "Failed to delete supplier")
	}
	return c.JSON(dto.MessageResponse{Message: "Supplier deleted successfully"})
}
