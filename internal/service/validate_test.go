package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawhaven/shelter-backend/internal/database"
	"github.com/pawhaven/shelter-backend/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestValidatePetBlankGenderDefaults(t *testing.T) {
	db := setupDB(t)

	pet := models.Pet{Name: "Biscuit"}
	errs := ValidatePet(db, &pet)
	assert.Empty(t, errs)
	assert.Equal(t, models.GenderUnknown, pet.Gender)
}

func TestValidatePetCollectsAllErrors(t *testing.T) {
	db := setupDB(t)

	missing := uint(40)
	pet := models.Pet{Gender: "wolf", LocationID: &missing}
	errs := ValidatePet(db, &pet)
	require.Len(t, errs, 3)
	assert.Contains(t, errs, "name can't be blank")
	assert.Contains(t, errs, "location must exist")
}

func TestValidateVaccineUniquenessIgnoresSelf(t *testing.T) {
	db := setupDB(t)

	freq := models.Frequency{Name: "Yearly", IntervalDays: 365}
	require.NoError(t, db.Create(&freq).Error)
	vac := models.Vaccine{Name: "Rabies", FrequencyID: freq.ID}
	require.NoError(t, db.Create(&vac).Error)

	// Saving the same record under its own name is not a conflict.
	assert.Empty(t, ValidateVaccine(db, &vac))

	dupe := models.Vaccine{Name: "Rabies", FrequencyID: freq.ID}
	errs := ValidateVaccine(db, &dupe)
	assert.Contains(t, errs, "name has already been taken")
}

func TestValidateVaccineSoftDeletedNameStaysReserved(t *testing.T) {
	db := setupDB(t)

	freq := models.Frequency{Name: "Yearly", IntervalDays: 365}
	require.NoError(t, db.Create(&freq).Error)
	vac := models.Vaccine{Name: "Rabies", FrequencyID: freq.ID}
	require.NoError(t, db.Create(&vac).Error)
	require.NoError(t, db.Delete(&vac).Error)

	// The soft-deleted row still occupies the unique index, so its name
	// must fail validation rather than surface a store error.
	fresh := models.Vaccine{Name: "Rabies", FrequencyID: freq.ID}
	assert.Contains(t, ValidateVaccine(db, &fresh), "name has already been taken")

	// A hard delete frees the name.
	require.NoError(t, db.Unscoped().Delete(&vac).Error)
	assert.Empty(t, ValidateVaccine(db, &fresh))
}

func TestValidateMedicationScheduleDateOrder(t *testing.T) {
	db := setupDB(t)

	pet := models.Pet{Name: "Biscuit", Gender: models.GenderUnknown}
	require.NoError(t, db.Create(&pet).Error)
	med := models.Medication{Name: "Heartworm Pill"}
	require.NoError(t, db.Create(&med).Error)
	freq := models.Frequency{Name: "Daily", IntervalDays: 1}
	require.NoError(t, db.Create(&freq).Error)

	ended := models.NewDate(2025, time.January, 5)
	ms := models.MedicationSchedule{
		PetID:        pet.ID,
		MedicationID: med.ID,
		FrequencyID:  freq.ID,
		DateStarted:  models.NewDate(2025, time.January, 10),
		DateEnded:    &ended,
	}
	errs := ValidateMedicationSchedule(db, &ms)
	assert.Equal(t, []string{"date_ended must not precede date_started"}, errs)

	ms.DateEnded = nil
	assert.Empty(t, ValidateMedicationSchedule(db, &ms))
}

func TestValidateInjurySeverity(t *testing.T) {
	db := setupDB(t)

	inj := models.Injury{Name: "Sprained Paw", Severity: "fatal"}
	errs := ValidateInjury(db, &inj)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "severity")

	inj.Severity = models.SeverityMinor
	assert.Empty(t, ValidateInjury(db, &inj))
}

func TestDeleteFrequencyCascades(t *testing.T) {
	db := setupDB(t)

	pet := models.Pet{Name: "Biscuit", Gender: models.GenderUnknown}
	require.NoError(t, db.Create(&pet).Error)
	freq := models.Frequency{Name: "Weekly", IntervalDays: 7}
	require.NoError(t, db.Create(&freq).Error)
	vac := models.Vaccine{Name: "Rabies", FrequencyID: freq.ID}
	require.NoError(t, db.Create(&vac).Error)
	chk := models.Check{Name: "Weight", FrequencyID: freq.ID}
	require.NoError(t, db.Create(&chk).Error)
	vs := models.VaccinationSchedule{
		PetID: pet.ID, VaccineID: vac.ID,
		DateGiven: models.NewDate(2025, time.February, 1),
	}
	require.NoError(t, db.Create(&vs).Error)
	cs := models.ChecksSchedule{PetID: pet.ID, CheckID: chk.ID, FrequencyID: freq.ID}
	require.NoError(t, db.Create(&cs).Error)

	require.NoError(t, DeleteFrequency(db, &freq))

	for table, count := range map[string]func() int64{
		"vaccines":              func() (n int64) { db.Unscoped().Model(&models.Vaccine{}).Count(&n); return },
		"checks":                func() (n int64) { db.Model(&models.Check{}).Count(&n); return },
		"vaccination_schedules": func() (n int64) { db.Model(&models.VaccinationSchedule{}).Count(&n); return },
		"checks_schedules":      func() (n int64) { db.Model(&models.ChecksSchedule{}).Count(&n); return },
		"frequencies":           func() (n int64) { db.Model(&models.Frequency{}).Count(&n); return },
	} {
		assert.Zero(t, count(), table)
	}

	// The pet itself is untouched.
	var petCount int64
	db.Model(&models.Pet{}).Count(&petCount)
	assert.EqualValues(t, 1, petCount)
}
