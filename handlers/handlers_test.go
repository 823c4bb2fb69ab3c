package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"tierra-media/app"
	"tierra-media/config/setup"
	"tierra-media/database"
	"tierra-media/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp creates a temporary database and a Fiber app with every route
func setupTestApp(t *testing.T) (*app.App, *fiber.App, *database.DB) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tierra-media-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := setup.InitDatabase(filepath.Join(tmpDir, "test.db"), logger)
	require.NoError(t, err, "Failed to initialize test database")

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	application := app.New(database.NewRepository(db), logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler()})
	setup.RegisterRoutes(fiberApp, application)

	return application, fiberApp, db
}

func insert(t *testing.T, a *app.App, h models.Inhabitant) int64 {
	t.Helper()
	id, err := a.Repo.InsertInhabitant(&h)
	require.NoError(t, err)
	return id
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func getHTML(t *testing.T, fiberApp *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

var frodo = models.Inhabitant{Name: "Frodo", Surname: "Bolsón", Age: 50, Race: "Hobbit", Location: "La Comarca", Profession: "Escriba"}
var legolas = models.Inhabitant{Name: "Legolas", Surname: "Hojaverde", Age: 2931, Race: "Elfo", Location: "Bosque Negro", Profession: "Arquero"}
var haldir = models.Inhabitant{Name: "Haldir", Surname: "de Lórien", Age: 2500, Race: "Elfo", Location: "Lothlórien", Profession: "Arquero"}

func TestProfessionListPage(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	insert(t, application, legolas)
	insert(t, application, haldir)
	insert(t, application, frodo)

	tests := []struct {
		name        string
		target      string
		contains    []string
		notContains []string
	}{
		{
			name:        "Known profession",
			target:      "/profesiones?profesion=Arquero",
			contains:    []string{"<h1>Arquero</h1>", "Haldir", "Legolas", `href="/"`},
			notContains: []string{"Frodo"},
		},
		{
			name:     "Unknown profession falls back to raw value",
			target:   "/profesiones?profesion=Pirata",
			contains: []string{"Profesión desconocida: Pirata", "No hay habitantes."},
		},
		{
			name:     "Missing selector",
			target:   "/profesiones",
			contains: []string{"Profesión desconocida: ", "No hay habitantes."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, html := getHTML(t, fiberApp, tt.target)
			assert.Equal(t, http.StatusOK, status)
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestRaceListPage_NewestFirst(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	insert(t, application, legolas)
	insert(t, application, haldir)

	status, html := getHTML(t, fiberApp, "/razas?raza=Elfo")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "<h1>Elfos</h1>")
	assert.Less(t, bytes.Index([]byte(html), []byte("Haldir")), bytes.Index([]byte(html), []byte("Legolas")))
}

func TestHomePage(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	insert(t, application, legolas)
	insert(t, application, frodo)

	status, html := getHTML(t, fiberApp, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "Total: <strong>2</strong>")
	assert.Contains(t, html, `<a href="/razas?raza=Elfo">Elfos</a> (1)`)
	assert.Contains(t, html, `<a href="/profesiones?profesion=Monje">Monje</a> (0)`)
}

func TestCountInhabitants(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	insert(t, application, legolas)
	insert(t, application, haldir)
	insert(t, application, frodo)

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/inhabitants/count", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["count"])

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/inhabitants/count?race=Elfo", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["count"])

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/inhabitants/count?race=Orco", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
}

func TestListEndpoints(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	first := insert(t, application, legolas)
	second := insert(t, application, haldir)

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/inhabitants/race/Elfo", nil)
	assert.Equal(t, http.StatusOK, status)
	list := body["inhabitants"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, float64(second), list[0].(map[string]interface{})["id"])
	assert.Equal(t, float64(first), list[1].(map[string]interface{})["id"])

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/inhabitants/profession/Monje", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["inhabitants"])
	assert.NotNil(t, body["inhabitants"], "empty lists encode as [] not null")
}

func TestCreateInhabitant(t *testing.T) {
	_, fiberApp, _ := setupTestApp(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Valid inhabitant",
			body: map[string]interface{}{
				"name": "Gimli", "surname": "hijo de Glóin", "age": 139,
				"race": "Enano", "location": "Erebor", "profession": "Herrero",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Unknown race",
			body: map[string]interface{}{
				"name": "Bárbol", "surname": "Fangorn", "age": 9000,
				"race": "Ent", "location": "Fangorn", "profession": "Monje",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "Missing fields",
			body:           map[string]interface{}{"name": "Gimli"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, http.MethodPost, "/api/inhabitants", tt.body)
			assert.Equal(t, tt.expectedStatus, status)

			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
				return
			}

			h := body["inhabitant"].(map[string]interface{})
			assert.Greater(t, h["id"].(float64), float64(0))
			assert.Equal(t, "Gimli", h["name"])
		})
	}
}

func TestGetUpdateDeleteInhabitant(t *testing.T) {
	application, fiberApp, _ := setupTestApp(t)
	id := insert(t, application, frodo)
	target := "/api/inhabitants/" + strconv.FormatInt(id, 10)

	status, body := doJSON(t, fiberApp, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Frodo", body["inhabitant"].(map[string]interface{})["name"])

	update := map[string]interface{}{
		"name": "Frodo", "surname": "Bolsón", "age": 51,
		"race": "Hobbit", "location": "Valinor", "profession": "Escriba",
	}
	status, _ = doJSON(t, fiberApp, http.MethodPut, target, update)
	assert.Equal(t, http.StatusOK, status)

	got, err := application.Repo.GetInhabitant(id)
	require.NoError(t, err)
	assert.Equal(t, "Valinor", got.Location)
	assert.Equal(t, 51, got.Age)

	// Unknown id: accepted, nothing changes
	status, _ = doJSON(t, fiberApp, http.MethodPut, "/api/inhabitants/9999", update)
	assert.Equal(t, http.StatusOK, status)
	n, err := application.Repo.CountInhabitants()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	status, body = doJSON(t, fiberApp, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["deleted"])

	status, body = doJSON(t, fiberApp, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["deleted"])

	status, body = doJSON(t, fiberApp, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Inhabitant not found", body["error"])
}

func TestInvalidID(t *testing.T) {
	_, fiberApp, _ := setupTestApp(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		status, body := doJSON(t, fiberApp, method, "/api/inhabitants/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "id must be a positive integer", body["error"])
	}
}

func TestListFailureReturnsServerError(t *testing.T) {
	_, fiberApp, db := setupTestApp(t)

	// Closing the pool makes every read fail
	require.NoError(t, db.Close())

	status, body := doJSON(t, fiberApp, http.MethodGet, "/razas?raza=Elfo", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}
