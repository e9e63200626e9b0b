package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/shelter-backend/internal/models"
)

// Exercises the flow a vet coordinator walks through: define a cadence,
// attach a vaccine to it, read the vaccine back with its cadence embedded,
// then retire the cadence and everything hanging off it.
func TestFrequencyLifecycle(t *testing.T) {
	router, db := setupTestRouter(t)

	freqID := createVia(t, router, "/api/v1/frequencies", map[string]any{
		"name":          "Weekly",
		"interval_days": 7,
	})
	vacID := createVia(t, router, "/api/v1/vaccines", map[string]any{
		"name":         "Rabies",
		"mandatory":    true,
		"frequency_id": freqID,
	})

	w := doJSON(t, router, "GET", "/api/v1/vaccines/1", nil)
	require.Equal(t, 200, w.Code)

	var vaccine models.Vaccine
	decode(t, w, &vaccine)
	assert.Equal(t, vacID, vaccine.ID)
	assert.True(t, vaccine.Mandatory)
	require.NotNil(t, vaccine.Frequency)
	assert.Equal(t, "Weekly", vaccine.Frequency.Name)
	assert.Equal(t, 7, vaccine.Frequency.IntervalDays)

	w = doJSON(t, router, "DELETE", "/api/v1/frequencies/1", nil)
	require.Equal(t, 204, w.Code)

	// The vaccine cannot outlive its cadence.
	w = doJSON(t, router, "GET", "/api/v1/vaccines/1", nil)
	assert.Equal(t, 404, w.Code)

	var count int64
	db.Unscoped().Model(&models.Vaccine{}).Count(&count)
	assert.Zero(t, count)
}

func TestFrequencyNameMustBeUnique(t *testing.T) {
	router, _ := setupTestRouter(t)

	createVia(t, router, "/api/v1/frequencies", map[string]any{
		"name": "Weekly", "interval_days": 7,
	})

	w := doJSON(t, router, "POST", "/api/v1/frequencies", map[string]any{
		"name": "Weekly", "interval_days": 14,
	})
	assert.Equal(t, 422, w.Code)

	var resp ErrorsResponse
	decode(t, w, &resp)
	assert.Contains(t, resp.Errors, "name has already been taken")
}

func TestDeletedVaccineNameStaysReserved(t *testing.T) {
	router, _ := setupTestRouter(t)

	freqID := createVia(t, router, "/api/v1/frequencies", map[string]any{
		"name": "Yearly", "interval_days": 365,
	})
	createVia(t, router, "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "frequency_id": freqID,
	})

	w := doJSON(t, router, "DELETE", "/api/v1/vaccines/1", nil)
	require.Equal(t, 204, w.Code)

	// The soft-deleted row still holds the unique index entry, so the
	// conflict must come back as a validation failure, not a store error.
	w = doJSON(t, router, "POST", "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "frequency_id": freqID,
	})
	assert.Equal(t, 422, w.Code)

	var resp ErrorsResponse
	decode(t, w, &resp)
	assert.Contains(t, resp.Errors, "name has already been taken")

	// Removing the frequency sweeps its vaccines out of the table
	// entirely, which frees the name for reuse.
	w = doJSON(t, router, "DELETE", "/api/v1/frequencies/1", nil)
	require.Equal(t, 204, w.Code)

	freshFreq := createVia(t, router, "/api/v1/frequencies", map[string]any{
		"name": "Yearly", "interval_days": 365,
	})
	w = doJSON(t, router, "POST", "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "frequency_id": freshFreq,
	})
	assert.Equal(t, 201, w.Code, w.Body.String())
}

func TestFrequencyIntervalMustBePositive(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, interval := range []int{0, -3} {
		w := doJSON(t, router, "POST", "/api/v1/frequencies", map[string]any{
			"name":          "Broken",
			"interval_days": interval,
		})
		assert.Equal(t, 422, w.Code)

		var resp ErrorsResponse
		decode(t, w, &resp)
		assert.Contains(t, resp.Errors, "interval_days must be a positive integer")
	}
}

func TestVaccineNameMustBeUnique(t *testing.T) {
	router, _ := setupTestRouter(t)

	freqID := createVia(t, router, "/api/v1/frequencies", map[string]any{
		"name": "Yearly", "interval_days": 365,
	})
	createVia(t, router, "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "frequency_id": freqID,
	})

	w := doJSON(t, router, "POST", "/api/v1/vaccines", map[string]any{
		"name": "Rabies", "frequency_id": freqID,
	})
	assert.Equal(t, 422, w.Code)

	var resp ErrorsResponse
	decode(t, w, &resp)
	assert.Contains(t, resp.Errors, "name has already been taken")

	// Renaming a vaccine to itself is fine.
	w = doJSON(t, router, "PUT", "/api/v1/vaccines/1", map[string]any{
		"name": "Rabies", "mandatory": true,
	})
	assert.Equal(t, 200, w.Code)
}
