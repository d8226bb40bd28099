package handlers

import (
	"errors"

	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/clefio/clefs-backend/internal/services"
	"github.com/clefio/clefs-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return respondDomainError(c, err, "Failed to fetch profile")
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.service.Update(c.Context(), userID, req)
	if err != nil {
		return respondDomainError(c, err, "Failed to update profile")
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateEmail(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.UpdateEmail(c.Context(), userID, req); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return respondDomainError(c, err, "Failed to update email")
	}
	return c.JSON(dto.MessageResponse{Message: "Email updated"})
}

func (h *ProfileHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.UpdatePassword(c.Context(), userID, req); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return respondDomainError(c, err, "Failed to update password")
	}
	return c.JSON(dto.MessageResponse{Message: "Password updated"})
}
