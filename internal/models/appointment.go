package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	ServiceID string `gorm:"size:36;index" json:"service_id"`
	BarberID  string `gorm:"size:36;index:idx_appointments_barber_date" json:"barber_id"`

	// Data "2006-01-02" e horário "15:04", como exibidos ao cliente
	Date string `gorm:"size:10;index:idx_appointments_barber_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
