package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/andreicarpen/planting-calendar/internal/models"
)

// Period labels are the slot vocabulary of the calendar: "{Period} of {Month}"
// with Period one of Beginning/Middle/End and Month an English month name.
// They are stored verbatim on records; anything that does not match the
// grammar is tolerated in storage and silently skipped at projection time.

func FormatPeriodLabel(period string, month string) string {
	return fmt.Sprintf("%s of %s", period, month)
}

// ParsePeriodLabel splits a period label into its period and month parts.
// Matching is exact: no case folding, no whitespace trimming.
func ParsePeriodLabel(label string) (string, string, bool) {
	period, month, found := strings.Cut(label, " of ")
	if !found {
		return "", "", false
	}
	if !isKnownPeriod(period) || !IsKnownMonth(month) {
		return "", "", false
	}
	return period, month, true
}

func IsValidPeriodLabel(label string) bool {
	_, _, ok := ParsePeriodLabel(label)
	return ok
}

func isKnownPeriod(period string) bool {
	switch period {
	case models.PeriodBeginning, models.PeriodMiddle, models.PeriodEnd:
		return true
	}
	return false
}

func IsKnownMonth(month string) bool {
	for _, name := range models.MonthNames() {
		if month == name {
			return true
		}
	}
	return false
}

// PeriodSlotDate maps a period label and year to a representative calendar
// date: the 1st for Beginning, the 11th for Middle, the 21st for End. Used by
// exports that need real dates (iCalendar); the slot itself stays a label.
func PeriodSlotDate(label string, year int, location *time.Location) (time.Time, bool) {
	period, month, ok := ParsePeriodLabel(label)
	if !ok {
		return time.Time{}, false
	}

	monthNumber := time.Month(0)
	for index, name := range models.MonthNames() {
		if month == name {
			monthNumber = time.Month(index + 1)
			break
		}
	}

	day := 1
	switch period {
	case models.PeriodMiddle:
		day = 11
	case models.PeriodEnd:
		day = 21
	}

	if location == nil {
		location = time.UTC
	}
	return time.Date(year, monthNumber, day, 0, 0, 0, 0, location), true
}
