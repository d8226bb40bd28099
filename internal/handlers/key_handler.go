package handlers

import (
	"strconv"

	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type KeyHandler struct {
	service *services.KeyService
}

func NewKeyHandler(service *services.KeyService) *KeyHandler {
	return &KeyHandler{service: service}
}

// List filters client-side over the full set, then paginates at the fixed
// page size.
func (h *KeyHandler) List(c *fiber.Ctx) error {
	keys, err := h.service.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch keys")
	}

	filtered := services.FilterKeys(keys, c.Query("q"))

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageKeys, currentPage, totalPages := services.PaginateKeys(filtered, page)

	return c.JSON(dto.KeyListResponse{
		Keys:       pageKeys,
		Total:      len(filtered),
		Page:       currentPage,
		TotalPages: totalPages,
	})
}

func (h *KeyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid key ID")
	}

	key, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch key")
	}
	return c.JSON(key)
}

func (h *KeyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	key, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondDomainError(c, err, "Failed to create key")
	}
	return c.Status(fiber.StatusCreated).JSON(key)
}

func (h *KeyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid key ID")
	}

	var req dto.UpdateKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	key, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to update key")
	}
	return c.JSON(key)
}

func (h *KeyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid key ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err, "Failed to delete key")
	}
	return c.JSON(dto.MessageResponse{Message: "Key deleted successfully"})
}
