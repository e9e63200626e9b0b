package models

import (
	"time"

	"gorm.io/gorm"
)

// Catalog entities describe the things that can be scheduled or reported
// against a pet: foods, medications, vaccines, recurring checks and injury
// kinds. Food, Medication and Vaccine soft-delete so historical schedule
// rows keep a readable reference.

type Food struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"size:100;not null" json:"name"`
	FoodType string `gorm:"size:50" json:"food_type"`
	Amount   string `gorm:"size:50" json:"amount"`
	Notes    string `gorm:"type:text" json:"notes"`
}

func (Food) TableName() string {
	return "foods"
}

type Medication struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Dosage      string `gorm:"size:100" json:"dosage"`
	Notes       string `gorm:"type:text" json:"notes"`
}

func (Medication) TableName() string {
	return "medications"
}

type Vaccine struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Mandatory   bool       `gorm:"default:false" json:"mandatory"`
	FrequencyID uint       `gorm:"not null" json:"frequency_id"`
	Frequency   *Frequency `gorm:"foreignKey:FrequencyID" json:"frequency,omitempty"`
}

func (Vaccine) TableName() string {
	return "vaccines"
}

type Injury struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Severity    Severity `gorm:"size:10;not null" json:"severity"`
}

func (Injury) TableName() string {
	return "injuries"
}

type Check struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	FrequencyID uint       `gorm:"not null" json:"frequency_id"`
	Frequency   *Frequency `gorm:"foreignKey:FrequencyID" json:"frequency,omitempty"`
}

func (Check) TableName() string {
	return "checks"
}
