package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")
	api.Get("/meta", handler.GetMeta)
	api.Get("/calendar", handler.GetCalendar)

	plantings := api.Group("/plantings")
	plantings.Get("", handler.GetPlantings)
	plantings.Post("", handler.CreatePlanting)
	plantings.Delete("/:id", handler.DeletePlanting)
	plantings.Put("/:id/image", handler.ReplacePlantingImage)
	plantings.Delete("/:id/image", handler.ClearPlantingImage)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/ics", handler.ExportICS)

	api.Post("/import", handler.ImportArchive)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
