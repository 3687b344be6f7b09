package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/services"
)

var exportCSVHeaders = []string{
	"ID",
	"Title",
	"Description",
	"Period",
	"Year",
	"Emoji",
	"Has image",
	"Created at",
}

// ExportJSON downloads the whole collection as the interchange archive. The
// filename carries the year selected at export time, not a data filter; the
// archive always holds every record so a later import restores everything.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	year, ok := parseYearQuery(c, handler.currentYear())
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}

	plantings, err := handler.store.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
	}

	serialized, err := services.EncodeArchive(plantings)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.ExportFilename(year, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	year, ok := parseYearQuery(c, handler.currentYear())
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}

	plantings, err := handler.store.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(exportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, planting := range plantings {
		if err := writer.Write([]string{
			fmt.Sprintf("%d", planting.ID),
			planting.Title,
			planting.Description,
			planting.Date,
			fmt.Sprintf("%d", planting.Year),
			planting.Emoji,
			csvYesNo(planting.Image != ""),
			planting.CreatedAt,
		}); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", services.ExportFilename(year, "csv"))
	return c.Send(output.Bytes())
}

func csvYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
