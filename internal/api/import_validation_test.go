package api

import (
	"net/http"
	"testing"

	"github.com/andreicarpen/planting-calendar/internal/models"
)

func TestMalformedImportLeavesCollectionUntouched(t *testing.T) {
	app := newTestApp(t, true)

	existing := createPlanting(t, app, plantingPayload{Title: "Tomato", Date: "Beginning of March", Year: 2024})

	response := doRaw(t, app, http.MethodPost, "/api/import", "this is not an archive")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	response.Body.Close()

	listResponse := doJSON(t, app, http.MethodGet, "/api/plantings", nil)
	plantings := []models.Planting{}
	decodeBody(t, listResponse, &plantings)
	if len(plantings) != 1 || plantings[0].ID != existing.ID {
		t.Fatalf("expected collection untouched after failed import, got %+v", plantings)
	}
}

func TestEmptyImportBodyRejected(t *testing.T) {
	app := newTestApp(t, true)

	response := doRaw(t, app, http.MethodPost, "/api/import", "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty body, got %d", response.StatusCode)
	}
	response.Body.Close()
}

// Lenient import accepts any well-formed array, titles or not, because
// archives in the wild rely on that. Strict mode is the opt-in schema check.
func TestTitlelessRecordLenientVersusStrict(t *testing.T) {
	archive := `[{"id": 1, "date": "Beginning of March", "year": 2024, "createdAt": "2024-01-01T00:00:00Z"}]`

	app := newTestApp(t, true)
	lenient := doRaw(t, app, http.MethodPost, "/api/import", archive)
	if lenient.StatusCode != http.StatusOK {
		t.Fatalf("expected lenient import to accept the archive, got %d", lenient.StatusCode)
	}
	lenient.Body.Close()

	listResponse := doJSON(t, app, http.MethodGet, "/api/plantings", nil)
	plantings := []models.Planting{}
	decodeBody(t, listResponse, &plantings)
	if len(plantings) != 1 || plantings[0].Title != "" {
		t.Fatalf("expected title-less record stored as-is, got %+v", plantings)
	}

	strict := doRaw(t, app, http.MethodPost, "/api/import?strict=true", archive)
	if strict.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected strict import to reject the archive, got %d", strict.StatusCode)
	}
	strict.Body.Close()

	listResponse = doJSON(t, app, http.MethodGet, "/api/plantings", nil)
	plantings = []models.Planting{}
	decodeBody(t, listResponse, &plantings)
	if len(plantings) != 1 {
		t.Fatalf("expected failed strict import to leave the collection untouched, got %d records", len(plantings))
	}
}

func TestImportReplacesWholeCollection(t *testing.T) {
	app := newTestApp(t, true)

	createPlanting(t, app, plantingPayload{Title: "Stale", Date: "Beginning of January", Year: 2023})

	archive := `[
  {"id": 10, "title": "Pepper", "description": "", "image": "", "emoji": "🌶", "date": "Middle of June", "year": 2024, "createdAt": "2024-06-01T00:00:00Z"}
]`
	response := doRaw(t, app, http.MethodPost, "/api/import", archive)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	listResponse := doJSON(t, app, http.MethodGet, "/api/plantings", nil)
	plantings := []models.Planting{}
	decodeBody(t, listResponse, &plantings)
	if len(plantings) != 1 || plantings[0].Title != "Pepper" {
		t.Fatalf("expected wholesale replacement, got %+v", plantings)
	}
}
