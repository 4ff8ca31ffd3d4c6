package models

import "time"

// SiteSettings é um registro único (id = 1) substituído por inteiro a cada save
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	LogoName string `gorm:"size:100" json:"logo_name"`
	LogoIcon string `gorm:"size:50" json:"logo_icon"`

	PrimaryColor    string `gorm:"size:20" json:"primary_color"`
	SecondaryColor  string `gorm:"size:20" json:"secondary_color"`
	BackgroundColor string `gorm:"size:20" json:"background_color"`

	HeroTitle       string `gorm:"size:255" json:"hero_title"`
	HeroDescription string `gorm:"type:text" json:"hero_description"`

	YearsExperience int    `json:"years_experience"`
	HeaderTagline   string `gorm:"size:255" json:"header_tagline"`

	AboutTitle       string `gorm:"size:255" json:"about_title"`
	AboutDescription string `gorm:"type:text" json:"about_description"`
	AboutMission     string `gorm:"type:text" json:"about_mission"`
	AboutVision      string `gorm:"type:text" json:"about_vision"`

	HeroBackgroundImage string `gorm:"size:255" json:"hero_background_image"`
	HeroBackgroundBlur  int    `json:"hero_background_blur"`

	UpdatedAt time.Time `json:"updated_at"`
}
