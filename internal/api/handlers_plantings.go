package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/models"
	"github.com/andreicarpen/planting-calendar/internal/services"
)

// GetCalendar returns the month/period projection the grid UI renders:
// every month (or the single filtered month) with its three period slots and
// the plantings assigned to each for the selected year.
func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	year, ok := parseYearQuery(c, handler.currentYear())
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}

	monthFilter := strings.TrimSpace(c.Query("month"))
	if monthFilter != "" && !services.IsKnownMonth(monthFilter) {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	plantings, err := handler.store.ListYear(year)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
	}

	return c.JSON(fiber.Map{
		"year":   year,
		"month":  monthFilter,
		"months": services.BuildCalendarGrid(plantings, year, monthFilter),
	})
}

func (handler *Handler) GetPlantings(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" {
		plantings, err := handler.store.List()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
		}
		return c.JSON(plantings)
	}

	year, ok := parseYearQuery(c, 0)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}

	plantings, err := handler.store.ListYear(year)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
	}
	return c.JSON(plantings)
}

func (handler *Handler) CreatePlanting(c *fiber.Ctx) error {
	payload := plantingPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	year := payload.Year
	if year == 0 {
		year = handler.currentYear()
	}

	planting, err := handler.store.Add(services.AddPlantingInput{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		Date:        payload.Date,
		Year:        year,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrPeriodRequired):
			return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save planting")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(planting)
}

func (handler *Handler) DeletePlanting(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.store.Remove(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete planting")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ReplacePlantingImage(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := imagePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	planting, err := handler.store.ReplaceImage(id, payload.Image)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrImageRequired):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrPlantingNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update planting")
		}
	}
	return c.JSON(planting)
}

func (handler *Handler) ClearPlantingImage(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	planting, err := handler.store.ClearImage(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlantingNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update planting")
		}
	}
	return c.JSON(planting)
}

// GetMeta exposes the slot vocabulary and variant flags the form UI needs.
func (handler *Handler) GetMeta(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"months":      models.MonthNames(),
		"periods":     models.PeriodNames(),
		"decorations": handler.store.Decorations(),
		"currentYear": handler.currentYear(),
	})
}
