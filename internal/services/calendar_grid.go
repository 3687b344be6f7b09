package services

import (
	"github.com/andreicarpen/planting-calendar/internal/models"
)

type PeriodGroup struct {
	Period    string            `json:"period"`
	Label     string            `json:"label"`
	Plantings []models.Planting `json:"plantings"`
}

type MonthGroup struct {
	Month   string        `json:"month"`
	Periods []PeriodGroup `json:"periods"`
}

// BuildCalendarGrid projects the collection onto the month/period grid for
// one year. monthFilter narrows the grid to a single month; empty means all
// twelve. Records keep their collection order inside each group. A record
// whose label matches no slot lands in no group and is not reported; the
// grid never mutates or duplicates records.
func BuildCalendarGrid(plantings []models.Planting, year int, monthFilter string) []MonthGroup {
	monthNames := models.MonthNames()
	if monthFilter != "" {
		monthNames = []string{monthFilter}
	}

	groups := make([]MonthGroup, 0, len(monthNames))
	for _, month := range monthNames {
		periods := make([]PeriodGroup, 0, len(models.PeriodNames()))
		for _, period := range models.PeriodNames() {
			label := FormatPeriodLabel(period, month)
			matched := make([]models.Planting, 0)
			for _, planting := range plantings {
				if planting.Year == year && planting.Date == label {
					matched = append(matched, planting)
				}
			}
			periods = append(periods, PeriodGroup{
				Period:    period,
				Label:     label,
				Plantings: matched,
			})
		}
		groups = append(groups, MonthGroup{Month: month, Periods: periods})
	}

	return groups
}
