package handlers

import (
	"errors"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/clefio/clefs-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondDomainError maps the domain error taxonomy onto HTTP statuses:
// validation 400 (with field), not-found 404, conflict 409, anything else
// 500 with the generic fallback message.
func respondDomainError(c *fiber.Ctx, err error, fallback string) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: verr.Message, Field: verr.Field,
		})
	}

	var nferr *domain.NotFoundError
	if errors.As(err, &nferr) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: nferr.Error(),
		})
	}

	var cferr *domain.ConflictError
	if errors.As(err, &cferr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: cferr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
