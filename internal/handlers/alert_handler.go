package handlers

import (
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	service *services.AlertService
}

func NewAlertHandler(service *services.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

// List returns alerts Pending-first, newest alert_date first within each
// group.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts, err := h.service.List(c.Context())
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch alerts")
	}

	sorted := services.SortAlerts(alerts)
	return c.JSON(dto.AlertListResponse{
		Alerts: sorted,
		Total:  len(sorted),
	})
}

func (h *AlertHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid alert ID")
	}

	alert, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch alert")
	}
	return c.JSON(alert)
}

func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	alert, err := h.service.Create(c.Context(), req)
	if err != nil {
		return respondDomainError(c, err, "Failed to create alert")
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

func (h *AlertHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid alert ID")
	}

	var req dto.UpdateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	alert, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to update alert")
	}
	return c.JSON(alert)
}

func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid alert ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err, "Failed to delete alert")
	}
	return c.JSON(dto.MessageResponse{Message: "Alert deleted successfully"})
}
