package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Avatar    string `gorm:"size:255" json:"avatar"`
	Available bool   `gorm:"default:true" json:"available"`

	ServiceIDs StringList `gorm:"type:text" json:"service_ids"`

	Rating       float64 `gorm:"default:5" json:"rating"`
	TotalRatings int     `json:"total_ratings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
