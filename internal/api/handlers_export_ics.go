package api

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/services"
)

// ExportICS renders the collection as an iCalendar feed of all-day events so
// plantings show up in a regular calendar app. Each period slot maps to a
// representative date in its month; records with malformed labels are
// skipped, same as the grid projection.
func (handler *Handler) ExportICS(c *fiber.Ctx) error {
	year, ok := parseYearQuery(c, handler.currentYear())
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}

	plantings, err := handler.store.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plantings")
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//Planting Calendar//EN")
	calendar.SetXWRCalName(fmt.Sprintf("Planting Calendar %d", year))

	now := time.Now().In(handler.location)
	for _, planting := range plantings {
		slotDate, valid := services.PeriodSlotDate(planting.Date, planting.Year, handler.location)
		if !valid {
			continue
		}

		event := calendar.AddEvent(fmt.Sprintf("planting-%d@planting-calendar", planting.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(slotDate)
		event.SetAllDayEndAt(slotDate.AddDate(0, 0, 1))
		event.SetSummary(plantingEventSummary(planting.Emoji, planting.Title))
		if planting.Description != "" {
			event.SetDescription(planting.Description)
		}
	}

	setExportAttachmentHeaders(c, "text/calendar; charset=utf-8", services.ExportFilename(year, "ics"))
	return c.SendString(calendar.Serialize())
}

func plantingEventSummary(emoji string, title string) string {
	if emoji == "" {
		return title
	}
	return emoji + " " + title
}
