// Package service holds the per-entity validation and deletion rules the
// REST layer is wired to at startup.
package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/internal/models"
)

// Validator checks a record against the entity's rules and returns
// human-readable messages. An empty slice means the record is valid.
type Validator[T any] func(db *gorm.DB, rec *T) []string

func exists[T any](db *gorm.DB, id uint) bool {
	var count int64
	var zero T
	db.Model(&zero).Where("id = ?", id).Count(&count)
	return count > 0
}

// taken reports whether another row already uses the value in column.
// Soft-deleted rows still occupy the unique index, so they keep their
// value reserved.
func taken[T any](db *gorm.DB, column, value string, selfID uint) bool {
	var count int64
	var zero T
	db.Unscoped().Model(&zero).Where(fmt.Sprintf("%s = ? AND id <> ?", column), value, selfID).Count(&count)
	return count > 0
}

func ValidatePet(db *gorm.DB, p *models.Pet) []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	if p.Gender == "" {
		p.Gender = models.GenderUnknown
	}
	if !p.Gender.Valid() {
		errs = append(errs, fmt.Sprintf("gender %q is not a valid gender", p.Gender))
	}
	if p.LocationID != nil && !exists[models.Location](db, *p.LocationID) {
		errs = append(errs, "location must exist")
	}
	return errs
}

func ValidateLocation(db *gorm.DB, l *models.Location) []string {
	var errs []string
	if l.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	return errs
}

func ValidateFood(db *gorm.DB, f *models.Food) []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	return errs
}

func ValidateMedication(db *gorm.DB, m *models.Medication) []string {
	var errs []string
	if m.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	return errs
}

func ValidateVaccine(db *gorm.DB, v *models.Vaccine) []string {
	var errs []string
	if v.Name == "" {
		errs = append(errs, "name can't be blank")
	} else if taken[models.Vaccine](db, "name", v.Name, v.ID) {
		errs = append(errs, "name has already been taken")
	}
	if v.FrequencyID == 0 {
		errs = append(errs, "frequency can't be blank")
	} else if !exists[models.Frequency](db, v.FrequencyID) {
		errs = append(errs, "frequency must exist")
	}
	return errs
}

func ValidateInjury(db *gorm.DB, i *models.Injury) []string {
	var errs []string
	if i.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	if i.Severity == "" {
		errs = append(errs, "severity can't be blank")
	} else if !i.Severity.Valid() {
		errs = append(errs, fmt.Sprintf("severity %q is not a valid severity", i.Severity))
	}
	return errs
}

func ValidateCheck(db *gorm.DB, c *models.Check) []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name can't be blank")
	}
	errs = append(errs, requireFrequency(db, c.FrequencyID)...)
	return errs
}

func ValidateFrequency(db *gorm.DB, f *models.Frequency) []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "name can't be blank")
	} else if taken[models.Frequency](db, "name", f.Name, f.ID) {
		errs = append(errs, "name has already been taken")
	}
	if f.IntervalDays <= 0 {
		errs = append(errs, "interval_days must be a positive integer")
	}
	return errs
}

func ValidatePetFood(db *gorm.DB, pf *models.PetFood) []string {
	var errs []string
	errs = append(errs, requirePet(db, pf.PetID)...)
	if pf.FoodID == 0 {
		errs = append(errs, "food can't be blank")
	} else if !exists[models.Food](db, pf.FoodID) {
		errs = append(errs, "food must exist")
	}
	errs = append(errs, requireFrequency(db, pf.FrequencyID)...)
	return errs
}

func ValidateMedicationSchedule(db *gorm.DB, ms *models.MedicationSchedule) []string {
	var errs []string
	errs = append(errs, requirePet(db, ms.PetID)...)
	if ms.MedicationID == 0 {
		errs = append(errs, "medication can't be blank")
	} else if !exists[models.Medication](db, ms.MedicationID) {
		errs = append(errs, "medication must exist")
	}
	errs = append(errs, requireFrequency(db, ms.FrequencyID)...)
	if ms.DateStarted.IsZero() {
		errs = append(errs, "date_started can't be blank")
	}
	if ms.DateEnded != nil && !ms.DateEnded.IsZero() && !ms.DateStarted.IsZero() &&
		ms.DateEnded.Before(ms.DateStarted) {
		errs = append(errs, "date_ended must not precede date_started")
	}
	return errs
}

func ValidateVaccinationSchedule(db *gorm.DB, vs *models.VaccinationSchedule) []string {
	var errs []string
	errs = append(errs, requirePet(db, vs.PetID)...)
	if vs.VaccineID == 0 {
		errs = append(errs, "vaccine can't be blank")
	} else if !exists[models.Vaccine](db, vs.VaccineID) {
		errs = append(errs, "vaccine must exist")
	}
	if vs.DateGiven.IsZero() {
		errs = append(errs, "date_given can't be blank")
	} else if vs.DateGiven.After(models.Today()) {
		errs = append(errs, "date_given must not be in the future")
	}
	return errs
}

func ValidateChecksSchedule(db *gorm.DB, cs *models.ChecksSchedule) []string {
	var errs []string
	errs = append(errs, requirePet(db, cs.PetID)...)
	if cs.CheckID == 0 {
		errs = append(errs, "check can't be blank")
	} else if !exists[models.Check](db, cs.CheckID) {
		errs = append(errs, "check must exist")
	}
	errs = append(errs, requireFrequency(db, cs.FrequencyID)...)
	return errs
}

func ValidateInjuryReport(db *gorm.DB, ir *models.InjuryReport) []string {
	var errs []string
	errs = append(errs, requirePet(db, ir.PetID)...)
	if ir.InjuryID == 0 {
		errs = append(errs, "injury can't be blank")
	} else if !exists[models.Injury](db, ir.InjuryID) {
		errs = append(errs, "injury must exist")
	}
	if ir.DateOccurred.IsZero() {
		errs = append(errs, "date_occurred can't be blank")
	} else if ir.DateOccurred.After(models.Today()) {
		errs = append(errs, "date_occurred must not be in the future")
	}
	return errs
}

func ValidatePetAdoption(db *gorm.DB, pa *models.PetAdoption) []string {
	var errs []string
	errs = append(errs, requirePet(db, pa.PetID)...)
	if pa.PetID != 0 {
		var count int64
		db.Model(&models.PetAdoption{}).Where("pet_id = ? AND id <> ?", pa.PetID, pa.ID).Count(&count)
		if count > 0 {
			errs = append(errs, "pet has already been adopted")
		}
	}
	if pa.AdoptionDate.IsZero() {
		errs = append(errs, "adoption_date can't be blank")
	} else if pa.AdoptionDate.After(models.Today()) {
		errs = append(errs, "adoption_date must not be in the future")
	}
	return errs
}

func requirePet(db *gorm.DB, id uint) []string {
	if id == 0 {
		return []string{"pet can't be blank"}
	}
	if !exists[models.Pet](db, id) {
		return []string{"pet must exist"}
	}
	return nil
}

func requireFrequency(db *gorm.DB, id uint) []string {
	if id == 0 {
		return []string{"frequency can't be blank"}
	}
	if !exists[models.Frequency](db, id) {
		return []string{"frequency must exist"}
	}
	return nil
}
