package models

import (
	"time"

	"gorm.io/gorm"
)

// Pet is a resident animal. Deleting a pet removes its schedule and report
// rows and soft-deletes the pet itself.
type Pet struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string `gorm:"size:100;not null" json:"name"`
	PetType       string `gorm:"size:50" json:"pet_type"`
	Breed         string `gorm:"size:100" json:"breed"`
	Gender        Gender `gorm:"size:10;default:'unknown'" json:"gender"`
	Birthday      *Date  `gorm:"type:date" json:"birthday,omitempty"`
	AdmissionDate *Date  `gorm:"type:date" json:"admission_date,omitempty"`

	LocationID *uint     `json:"location_id,omitempty"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`

	Picture  string `gorm:"size:255" json:"picture"`
	Nickname string `gorm:"size:100" json:"nickname"`
	Notes    string `gorm:"type:text" json:"notes"`
	Adopted  bool   `gorm:"default:false" json:"adopted"`
}

func (Pet) TableName() string {
	return "pets"
}
