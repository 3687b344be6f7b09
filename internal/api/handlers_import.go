package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/services"
)

// ImportArchive replaces the whole collection with the uploaded archive. The
// request body is the archive text. Parsing is lenient by default;
// strict=true turns on schema validation. Any failure leaves the existing
// collection untouched.
func (handler *Handler) ImportArchive(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return apiError(c, fiber.StatusBadRequest, "archive body is required")
	}

	strict := strings.EqualFold(strings.TrimSpace(c.Query("strict")), "true")

	plantings, err := services.DecodeArchive(body, strict)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArchiveMalformed), errors.Is(err, services.ErrArchiveInvalid):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusBadRequest, "failed to read archive")
		}
	}

	if err := handler.store.ReplaceAll(plantings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to import archive")
	}

	return c.JSON(fiber.Map{"imported": len(plantings)})
}
