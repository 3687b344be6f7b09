package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/andreicarpen/planting-calendar/internal/models"
)

var (
	ErrArchiveMalformed = errors.New("archive is not a valid planting calendar file")
	ErrArchiveInvalid   = errors.New("archive failed validation")
)

// EncodeArchive serializes the collection to the interchange format: a
// pretty-printed JSON array with every field verbatim. Deterministic for a
// given collection.
func EncodeArchive(plantings []models.Planting) ([]byte, error) {
	if plantings == nil {
		plantings = make([]models.Planting, 0)
	}
	return json.MarshalIndent(plantings, "", "  ")
}

// ExportFilename names a download after the year being viewed at export time.
func ExportFilename(year int, extension string) string {
	return fmt.Sprintf("planting-calendar-%d.%s", year, extension)
}

// DecodeArchive parses archive text back into records. The default mode is
// lenient: any well-formed JSON array is accepted as-is, titles and period
// labels included, and a JSON null counts as an empty collection, so archives
// written by older versions keep importing. Strict mode additionally requires
// a non-empty title, a parseable period label, and pairwise-distinct ids,
// rejecting the whole archive on the first violation.
func DecodeArchive(data []byte, strict bool) ([]models.Planting, error) {
	var plantings []models.Planting
	if err := json.Unmarshal(data, &plantings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveMalformed, err)
	}
	if plantings == nil {
		plantings = make([]models.Planting, 0)
	}

	if strict {
		if err := validateArchive(plantings); err != nil {
			return nil, err
		}
	}

	return plantings, nil
}

func validateArchive(plantings []models.Planting) error {
	seenIDs := make(map[int64]int, len(plantings))
	for index, planting := range plantings {
		if strings.TrimSpace(planting.Title) == "" {
			return fmt.Errorf("%w: record %d has no title", ErrArchiveInvalid, index)
		}
		if !IsValidPeriodLabel(planting.Date) {
			return fmt.Errorf("%w: record %d has malformed period label %q", ErrArchiveInvalid, index, planting.Date)
		}
		if previous, duplicate := seenIDs[planting.ID]; duplicate {
			return fmt.Errorf("%w: records %d and %d share id %d", ErrArchiveInvalid, previous, index, planting.ID)
		}
		seenIDs[planting.ID] = index
	}
	return nil
}
