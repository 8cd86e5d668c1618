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
	"testing"

	"mistake-tracker/app"
	"mistake-tracker/config/setup"
	"mistake-tracker/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp creates a temporary database and a Fiber app with every route registered
func setupTestApp(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mistake-tracker-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := setup.InitDatabase(filepath.Join(tmpDir, "test.db"), logger)
	require.NoError(t, err, "Failed to initialize test database")

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	application := app.New(database.NewRepository(db), logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(logger)})
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, application
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

func createSubject(t *testing.T, fiberApp *fiber.App, name string) int64 {
	t.Helper()
	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/subjects", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return int64(body["subject"].(map[string]interface{})["id"].(float64))
}

func TestHealth(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestSubjects(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "Create subject",
			body:           map[string]string{"name": "Physics", "description": "Mechanics"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				subject := body["subject"].(map[string]interface{})
				assert.Equal(t, "Physics", subject["name"])
			},
		},
		{
			name:           "Duplicate subject",
			body:           map[string]string{"name": "Physics"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Empty name",
			body:           map[string]string{"name": "  "},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				fields := body["fields"].([]interface{})
				require.Len(t, fields, 1)
				assert.Equal(t, "name", fields[0].(map[string]interface{})["field"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, fiberApp, http.MethodPost, "/api/subjects", tt.body)
			assert.Equal(t, tt.expectedStatus, status, "body: %v", body)
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}

	createSubject(t, fiberApp, "Biology")

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/subjects", nil)
	require.Equal(t, http.StatusOK, status)
	subjects := body["subjects"].([]interface{})
	require.Len(t, subjects, 2)
	assert.Equal(t, "Biology", subjects[0].(map[string]interface{})["name"])
	assert.Equal(t, "Physics", subjects[1].(map[string]interface{})["name"])
}

func TestImportSubjects(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	createSubject(t, fiberApp, "Biology")

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/subjects/import", map[string]interface{}{
		"names": []string{"Biology", "Chemistry", "Biology"},
	})
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	assert.Equal(t, float64(1), body["added_count"])
	assert.Equal(t, float64(2), body["skipped_count"])

	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/subjects/import", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCategories(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	mathID := createSubject(t, fiberApp, "Applied Math")

	path := "/api/subjects/" + itoa(mathID) + "/categories"
	status, _ := doRequest(t, fiberApp, http.MethodPost, path, map[string]string{"name": "Calculus"})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doRequest(t, fiberApp, http.MethodPost, path, map[string]string{"name": "Algebra"})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doRequest(t, fiberApp, http.MethodPost, path, map[string]string{"name": "Algebra"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/subjects/999/categories", map[string]string{"name": "Algebra"})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/subjects/Applied%20Math/categories", nil)
	require.Equal(t, http.StatusOK, status)
	categories := body["categories"].([]interface{})
	require.Len(t, categories, 2)
	assert.Equal(t, "Algebra", categories[0].(map[string]interface{})["name"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/subjects/Unknown/categories", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["categories"])
}

func TestMistakes(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	mathID := createSubject(t, fiberApp, "Math")
	createSubject(t, fiberApp, "English")
	status, _ := doRequest(t, fiberApp, http.MethodPost, "/api/subjects/"+itoa(mathID)+"/categories", map[string]string{"name": "Calculus"})
	require.Equal(t, http.StatusCreated, status)

	t.Run("Missing fields are reported individually", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodPost, "/api/mistakes", map[string]string{"description": "no title"})
		require.Equal(t, http.StatusBadRequest, status)

		var fields []string
		for _, f := range body["fields"].([]interface{}) {
			fields = append(fields, f.(map[string]interface{})["field"].(string))
		}
		assert.ElementsMatch(t, []string{"title", "subject", "correct_answer"}, fields)
	})

	t.Run("Unknown subject", func(t *testing.T) {
		status, _ := doRequest(t, fiberApp, http.MethodPost, "/api/mistakes", map[string]string{
			"title": "x", "subject": "Alchemy", "correct_answer": "y",
		})
		assert.Equal(t, http.StatusNotFound, status)
	})

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/mistakes", map[string]string{
		"title": "Sign error", "subject": "Math", "correct_answer": "-2",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/mistakes", map[string]string{
		"title":            "Chain rule",
		"description":      "Forgot the inner derivative",
		"subject":          "Math",
		"category":         "Calculus",
		"difficulty_level": "Hard",
		"correct_answer":   "2x cos(x^2)",
		"tags":             "derivatives, calculus, derivatives",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	chainID := int64(body["id"].(float64))

	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/mistakes", map[string]string{
		"title": "Comma splice", "subject": "English", "correct_answer": "Use a semicolon",
	})
	require.Equal(t, http.StatusCreated, status)

	t.Run("List newest first", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/api/mistakes", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(3), body["count"])
		first := body["mistakes"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Comma splice", first["title"])
	})

	t.Run("Filter by subject and search", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/api/mistakes?subject=Math&q=deriv", nil)
		require.Equal(t, http.StatusOK, status)
		mistakes := body["mistakes"].([]interface{})
		require.Len(t, mistakes, 1)
		m := mistakes[0].(map[string]interface{})
		assert.Equal(t, float64(chainID), m["id"])
		assert.Equal(t, "Calculus", m["category_name"])
		assert.ElementsMatch(t, []interface{}{"derivatives", "calculus"}, m["tags"])
	})

	t.Run("All Subjects", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/api/mistakes?subject=All%20Subjects", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(3), body["count"])
	})

	t.Run("Review twice", func(t *testing.T) {
		path := "/api/mistakes/" + itoa(chainID) + "/review"
		status, _ := doRequest(t, fiberApp, http.MethodPost, path, nil)
		require.Equal(t, http.StatusOK, status)
		status, body := doRequest(t, fiberApp, http.MethodPost, path, nil)
		require.Equal(t, http.StatusOK, status)

		m := body["mistake"].(map[string]interface{})
		assert.Equal(t, true, m["is_reviewed"])
		assert.Equal(t, float64(2), m["review_count"])
		assert.NotEmpty(t, m["last_reviewed_at"])
	})

	t.Run("Review unknown", func(t *testing.T) {
		status, _ := doRequest(t, fiberApp, http.MethodPost, "/api/mistakes/999/review", nil)
		assert.Equal(t, http.StatusNotFound, status)
		status, _ = doRequest(t, fiberApp, http.MethodGet, "/api/mistakes/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Stats and tags", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/api/stats", nil)
		require.Equal(t, http.StatusOK, status)
		stats := body["stats"].(map[string]interface{})
		assert.Equal(t, float64(3), stats["total_mistakes"])
		assert.Equal(t, float64(2), stats["total_subjects"])
		assert.Equal(t, float64(1), stats["reviewed_mistakes"])

		status, body = doRequest(t, fiberApp, http.MethodGet, "/api/tags", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["tags"], 2)
	})

	t.Run("Apply tags to an existing mistake", func(t *testing.T) {
		path := "/api/mistakes/" + itoa(chainID) + "/tags"
		status, body := doRequest(t, fiberApp, http.MethodPost, path, map[string]string{"tags": "calculus, review later"})
		require.Equal(t, http.StatusOK, status, "body: %v", body)

		m := body["mistake"].(map[string]interface{})
		assert.ElementsMatch(t, []interface{}{"derivatives", "calculus", "review later"}, m["tags"])

		status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/mistakes/999/tags", map[string]string{"tags": "orphan"})
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = doRequest(t, fiberApp, http.MethodPost, path, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, status)

		status, body = doRequest(t, fiberApp, http.MethodGet, "/api/tags", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["tags"], 3)
	})

	t.Run("Deleting a subject removes its mistakes", func(t *testing.T) {
		status, _ := doRequest(t, fiberApp, http.MethodDelete, "/api/subjects/"+itoa(mathID), nil)
		require.Equal(t, http.StatusNoContent, status)

		status, body := doRequest(t, fiberApp, http.MethodGet, "/api/mistakes", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(1), body["count"])

		status, _ = doRequest(t, fiberApp, http.MethodDelete, "/api/subjects/"+itoa(mathID), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCatalog(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["groups"], 5)
}
