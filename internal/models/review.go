package models

import "time"

// Review nunca é alterada nem removida depois de criada
type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	AppointmentID string `gorm:"size:36;uniqueIndex" json:"appointment_id"`
	ClientName    string `gorm:"size:100" json:"client_name"`
	BarberID      string `gorm:"size:36;index" json:"barber_id"`

	EstablishmentRating int    `json:"establishment_rating"`
	BarberRating        int    `json:"barber_rating"`
	Comment             string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
