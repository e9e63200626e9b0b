package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is a kennel, wing or foster address pets can be assigned to.
// Pets survive its deletion: their location reference is nullified.
type Location struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Notes   string `gorm:"type:text" json:"notes"`
}

func (Location) TableName() string {
	return "locations"
}
