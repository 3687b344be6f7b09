package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/services"
)

type Handler struct {
	store    *services.PlantingStore
	location *time.Location
}

type plantingPayload struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Date        string `json:"date" form:"date"`
	Year        int    `json:"year" form:"year"`
}

type imagePayload struct {
	Image string `json:"image" form:"image"`
}

func NewHandler(store *services.PlantingStore, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		store:    store,
		location: location,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) currentYear() int {
	return time.Now().In(handler.location).Year()
}
