package handlers

import (
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type KeyHistoryHandler struct {
	service *services.KeyHistoryService
}

func NewKeyHistoryHandler(service *services.KeyHistoryService) *KeyHistoryHandler {
	return &KeyHistoryHandler{service: service}
}

func (h *KeyHistoryHandler) ListForKey(c *fiber.Ctx) error {
	keyID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid key ID")
	}

	histories, err := h.service.ListForKey(c.Context(), keyID)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch key history")
	}
	return c.JSON(dto.KeyHistoryListResponse{
		Histories: histories,
		Total:     len(histories),
	})
}

func (h *KeyHistoryHandler) Add(c *fiber.Ctx) error {
	keyID, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid key ID")
	}

	var req dto.CreateKeyHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	history, err := h.service.Add(c.Context(), keyID, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to add key history entry")
	}
	return c.Status(fiber.StatusCreated).JSON(history)
}
