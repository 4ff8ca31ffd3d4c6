package models

import "time"

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`

	// Lista vazia significa "sem restrição": vale a grade canônica
	AvailableTimes StringList `gorm:"type:text" json:"available_times"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
