package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseYearQuery reads the selected year from the query string, falling back
// when absent. The year stepper is unbounded, so any integer is accepted.
func parseYearQuery(c *fiber.Ctx, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" {
		return fallback, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
