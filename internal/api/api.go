package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/internal/models"
	"github.com/pawhaven/shelter-backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Shelter API is running",
	})
}

// SetupAPI wires every resource to its handler and validator at startup.
// The mapping is explicit and statically typed: adding an entity means
// adding a line here, and a typo is a compile error rather than a 500.
func SetupAPI(router *gin.Engine, db *gorm.DB, photos *service.PhotoService) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		NewResource[models.Pet](db, "pet", service.ValidatePet, service.DeletePet, "Location").Register(v1, "pets")
		NewResource[models.Location](db, "location", service.ValidateLocation, service.DeleteLocation).Register(v1, "locations")
		NewResource[models.Food](db, "food", service.ValidateFood, service.DeleteFood).Register(v1, "foods")
		NewResource[models.Medication](db, "medication", service.ValidateMedication, service.DeleteMedication).Register(v1, "medications")
		NewResource[models.Vaccine](db, "vaccine", service.ValidateVaccine, service.DeleteVaccine, "Frequency").Register(v1, "vaccines")
		NewResource[models.Injury](db, "injury", service.ValidateInjury, service.DeleteInjury).Register(v1, "injuries")
		NewResource[models.Check](db, "check", service.ValidateCheck, service.DeleteCheck, "Frequency").Register(v1, "checks")
		NewResource[models.Frequency](db, "frequency", service.ValidateFrequency, service.DeleteFrequency).Register(v1, "frequencies")

		NewResource[models.PetFood](db, "pet food", service.ValidatePetFood, nil, "Food", "Frequency").Register(v1, "pet_foods")
		NewResource[models.MedicationSchedule](db, "medication schedule", service.ValidateMedicationSchedule, nil, "Medication", "Frequency").Register(v1, "medication_schedules")
		NewResource[models.VaccinationSchedule](db, "vaccination schedule", service.ValidateVaccinationSchedule, nil, "Vaccine").Register(v1, "vaccination_schedules")
		NewResource[models.ChecksSchedule](db, "checks schedule", service.ValidateChecksSchedule, nil, "Check", "Frequency").Register(v1, "checks_schedules")
		NewResource[models.InjuryReport](db, "injury report", service.ValidateInjuryReport, nil, "Injury").Register(v1, "injury_reports")
		NewResource[models.PetAdoption](db, "pet adoption", service.ValidatePetAdoption, nil).Register(v1, "pet_adoptions")

		if photos != nil {
			NewPetPhotoHandler(db, photos).RegisterRoutes(v1)
		}
	}
}
