package service

import (
	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/internal/models"
)

// Deleter removes a record and whatever depends on it. Entities without
// dependents use the default single-row delete in the REST layer.
type Deleter[T any] func(db *gorm.DB, rec *T) error

// DeletePet removes the pet's schedule and report rows, then soft-deletes
// the pet. Soft delete doesn't fire DB-level cascades, so the dependent
// rows go explicitly in the same transaction.
func DeletePet(db *gorm.DB, pet *models.Pet) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&models.InjuryReport{},
			&models.MedicationSchedule{},
			&models.VaccinationSchedule{},
			&models.PetFood{},
			&models.ChecksSchedule{},
			&models.PetAdoption{},
		} {
			if err := tx.Where("pet_id = ?", pet.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(pet).Error
	})
}

// DeleteLocation nullifies pets referencing the location, then soft-deletes it.
func DeleteLocation(db *gorm.DB, loc *models.Location) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Pet{}).Where("location_id = ?", loc.ID).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(loc).Error
	})
}

// DeleteFrequency cascades to the vaccines and checks built on the
// frequency (and their schedule rows), plus schedule rows referencing it
// directly, then removes the frequency itself.
func DeleteFrequency(db *gorm.DB, freq *models.Frequency) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Soft-deleted vaccines still reference the frequency, so the
		// sweep runs unscoped.
		var vaccineIDs []uint
		if err := tx.Unscoped().Model(&models.Vaccine{}).Where("frequency_id = ?", freq.ID).
			Pluck("id", &vaccineIDs).Error; err != nil {
			return err
		}
		if len(vaccineIDs) > 0 {
			if err := tx.Where("vaccine_id IN ?", vaccineIDs).
				Delete(&models.VaccinationSchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", vaccineIDs).
				Delete(&models.Vaccine{}).Error; err != nil {
				return err
			}
		}

		var checkIDs []uint
		if err := tx.Model(&models.Check{}).Where("frequency_id = ?", freq.ID).
			Pluck("id", &checkIDs).Error; err != nil {
			return err
		}
		if len(checkIDs) > 0 {
			if err := tx.Where("check_id IN ?", checkIDs).
				Delete(&models.ChecksSchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", checkIDs).
				Delete(&models.Check{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []interface{}{
			&models.PetFood{},
			&models.MedicationSchedule{},
			&models.ChecksSchedule{},
		} {
			if err := tx.Where("frequency_id = ?", freq.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(freq).Error
	})
}

// DeleteFood removes feeding schedule rows for the food, then soft-deletes it.
func DeleteFood(db *gorm.DB, food *models.Food) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.PetFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(food).Error
	})
}

// DeleteMedication removes its schedule rows, then soft-deletes it.
func DeleteMedication(db *gorm.DB, med *models.Medication) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medication_id = ?", med.ID).
			Delete(&models.MedicationSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(med).Error
	})
}

// DeleteVaccine removes its vaccination rows, then soft-deletes it.
func DeleteVaccine(db *gorm.DB, vac *models.Vaccine) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vaccine_id = ?", vac.ID).
			Delete(&models.VaccinationSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(vac).Error
	})
}

// DeleteInjury removes its reports, then the injury kind.
func DeleteInjury(db *gorm.DB, inj *models.Injury) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("injury_id = ?", inj.ID).
			Delete(&models.InjuryReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(inj).Error
	})
}

// DeleteCheck removes its schedule rows, then the check.
func DeleteCheck(db *gorm.DB, chk *models.Check) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("check_id = ?", chk.ID).
			Delete(&models.ChecksSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(chk).Error
	})
}
