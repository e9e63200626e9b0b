package models

import "time"

// Schedule and report rows bind a pet to a catalog entity plus dates and
// notes. They hard-delete: removing the owning pet removes them outright.

// PetFood is a feeding schedule entry.
type PetFood struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID       uint       `gorm:"not null;index" json:"pet_id"`
	Pet         *Pet       `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	FoodID      uint       `gorm:"not null" json:"food_id"`
	Food        *Food      `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	FrequencyID uint       `gorm:"not null" json:"frequency_id"`
	Frequency   *Frequency `gorm:"foreignKey:FrequencyID" json:"frequency,omitempty"`

	Amount string `gorm:"size:50" json:"amount"`
	Notes  string `gorm:"type:text" json:"notes"`
}

func (PetFood) TableName() string {
	return "pet_foods"
}

// MedicationSchedule records a recurring medication course for a pet.
// DateEnded, when present, must not precede DateStarted.
type MedicationSchedule struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID        uint        `gorm:"not null;index" json:"pet_id"`
	Pet          *Pet        `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	MedicationID uint        `gorm:"not null" json:"medication_id"`
	Medication   *Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
	FrequencyID  uint        `gorm:"not null" json:"frequency_id"`
	Frequency    *Frequency  `gorm:"foreignKey:FrequencyID" json:"frequency,omitempty"`

	DateStarted Date   `gorm:"type:date;not null" json:"date_started"`
	DateEnded   *Date  `gorm:"type:date" json:"date_ended,omitempty"`
	Notes       string `gorm:"type:text" json:"notes"`
}

func (MedicationSchedule) TableName() string {
	return "medication_schedules"
}

// VaccinationSchedule records a vaccine administered to a pet. DateGiven
// must not be in the future.
type VaccinationSchedule struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID     uint     `gorm:"not null;index" json:"pet_id"`
	Pet       *Pet     `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	VaccineID uint     `gorm:"not null" json:"vaccine_id"`
	Vaccine   *Vaccine `gorm:"foreignKey:VaccineID" json:"vaccine,omitempty"`

	DateGiven Date   `gorm:"type:date;not null" json:"date_given"`
	Notes     string `gorm:"type:text" json:"notes"`
}

func (VaccinationSchedule) TableName() string {
	return "vaccination_schedules"
}

// ChecksSchedule records a recurring wellness check for a pet.
type ChecksSchedule struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID       uint       `gorm:"not null;index" json:"pet_id"`
	Pet         *Pet       `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	CheckID     uint       `gorm:"not null" json:"check_id"`
	Check       *Check     `gorm:"foreignKey:CheckID" json:"check,omitempty"`
	FrequencyID uint       `gorm:"not null" json:"frequency_id"`
	Frequency   *Frequency `gorm:"foreignKey:FrequencyID" json:"frequency,omitempty"`

	DateStarted *Date  `gorm:"type:date" json:"date_started,omitempty"`
	Notes       string `gorm:"type:text" json:"notes"`
}

func (ChecksSchedule) TableName() string {
	return "checks_schedules"
}

// InjuryReport records an injury observed on a pet. DateOccurred must not
// be in the future.
type InjuryReport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID    uint    `gorm:"not null;index" json:"pet_id"`
	Pet      *Pet    `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	InjuryID uint    `gorm:"not null" json:"injury_id"`
	Injury   *Injury `gorm:"foreignKey:InjuryID" json:"injury,omitempty"`

	DateOccurred Date   `gorm:"type:date;not null" json:"date_occurred"`
	Notes        string `gorm:"type:text" json:"notes"`
}

func (InjuryReport) TableName() string {
	return "injury_reports"
}

// PetAdoption records the adoption of a pet. A pet has at most one and the
// adoption date must not be in the future.
type PetAdoption struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PetID uint `gorm:"not null;uniqueIndex" json:"pet_id"`
	Pet   *Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`

	AdopterName  string `gorm:"size:100" json:"adopter_name"`
	AdoptionDate Date   `gorm:"type:date;not null" json:"adoption_date"`
	Notes        string `gorm:"type:text" json:"notes"`
}

func (PetAdoption) TableName() string {
	return "pet_adoptions"
}
