package models

import "time"

// Frequency is a named recurring interval in days, referenced by vaccines,
// checks and every schedule row. Deleting a frequency cascades to everything
// that references it.
type Frequency struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	IntervalDays int    `gorm:"not null" json:"interval_days"`
}

func (Frequency) TableName() string {
	return "frequencies"
}
