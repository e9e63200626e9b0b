package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/shelter-backend/internal/api"
	"github.com/pawhaven/shelter-backend/internal/models"
	"github.com/pawhaven/shelter-backend/internal/testhelpers"
)

// Runs the full CRUD contract against real postgres instead of SQLite.
// Skipped when docker is unavailable.
func TestShelterWorkflowOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.SetupAPI(router, db, nil)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Intake a pet at a location.
	w := do("POST", "/api/v1/locations", map[string]any{"name": "North Wing"})
	require.Equal(t, 201, w.Code)
	w = do("POST", "/api/v1/pets", map[string]any{
		"name":           "Biscuit",
		"pet_type":       "dog",
		"gender":         "female",
		"birthday":       "2023-05-20",
		"admission_date": "2025-01-04",
		"location_id":    1,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var pet models.Pet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pet))
	assert.Equal(t, models.GenderFemale, pet.Gender)
	require.NotNil(t, pet.Birthday)
	assert.Equal(t, "2023-05-20", pet.Birthday.String())

	// Set up a vaccination cadence and record a shot.
	w = do("POST", "/api/v1/frequencies", map[string]any{"name": "Yearly", "interval_days": 365})
	require.Equal(t, 201, w.Code)
	w = do("POST", "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "mandatory": true, "frequency_id": 1,
	})
	require.Equal(t, 201, w.Code)
	w = do("POST", "/api/v1/vaccination_schedules", map[string]any{
		"pet_id": pet.ID, "vaccine_id": 1, "date_given": "2025-02-01",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	// The shot lists with its vaccine embedded.
	w = do("GET", "/api/v1/vaccination_schedules", nil)
	require.Equal(t, 200, w.Code)
	var shots []models.VaccinationSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shots))
	require.Len(t, shots, 1)
	require.NotNil(t, shots[0].Vaccine)
	assert.Equal(t, "Rabies", shots[0].Vaccine.Name)

	// Adopt the pet out, then delete it. Dependents go with it.
	w = do("POST", "/api/v1/pet_adoptions", map[string]any{
		"pet_id": pet.ID, "adopter_name": "Sam Ortiz", "adoption_date": "2025-06-15",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	w = do("DELETE", "/api/v1/pets/1", nil)
	require.Equal(t, 204, w.Code)

	var remaining int64
	db.Model(&models.VaccinationSchedule{}).Count(&remaining)
	assert.Zero(t, remaining)
	db.Model(&models.PetAdoption{}).Count(&remaining)
	assert.Zero(t, remaining)

	// Soft delete keeps the row recoverable in storage.
	var buried int64
	db.Unscoped().Model(&models.Pet{}).Count(&buried)
	assert.EqualValues(t, 1, buried)
	w = do("GET", "/api/v1/pets", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
