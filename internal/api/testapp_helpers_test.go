package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andreicarpen/planting-calendar/internal/db"
	"github.com/andreicarpen/planting-calendar/internal/models"
	"github.com/andreicarpen/planting-calendar/internal/services"
)

func newTestApp(t *testing.T, decorations bool) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "plantings.db"))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}

	repository := db.NewPlantingRepository(database)
	picker := services.NewEmojiPicker(models.PlantEmojiPalette())
	store, err := services.NewPlantingStore(repository, picker, decorations)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, NewHandler(store, time.UTC))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		serialized, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(serialized)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func doRaw(t *testing.T, app *fiber.App, method string, path string, body string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	request.Header.Set("Content-Type", "application/json")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
}

func createPlanting(t *testing.T, app *fiber.App, payload plantingPayload) models.Planting {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/plantings", payload)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 creating planting, got %d", response.StatusCode)
	}

	planting := models.Planting{}
	decodeBody(t, response, &planting)
	return planting
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type calendarResponse struct {
	Year   int                   `json:"year"`
	Month  string                `json:"month"`
	Months []services.MonthGroup `json:"months"`
}

func fetchCalendar(t *testing.T, app *fiber.App, path string) calendarResponse {
	t.Helper()

	response := doJSON(t, app, http.MethodGet, path, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 from %s, got %d", path, response.StatusCode)
	}

	payload := calendarResponse{}
	decodeBody(t, response, &payload)
	return payload
}

func findSlot(t *testing.T, payload calendarResponse, month string, period string) services.PeriodGroup {
	t.Helper()
	for _, monthGroup := range payload.Months {
		if monthGroup.Month != month {
			continue
		}
		for _, periodGroup := range monthGroup.Periods {
			if periodGroup.Period == period {
				return periodGroup
			}
		}
	}
	t.Fatalf("slot (%s, %s) not in calendar response", month, period)
	return services.PeriodGroup{}
}
