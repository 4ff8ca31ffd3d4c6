package db

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/models"
)

// Seed popula o catálogo padrão da BarberPro na primeira execução.
// Tabelas vazias são tratadas como "first run"; nada é sobrescrito depois.
func Seed(db *gorm.DB) {
	seedServices(db)
	seedBarbers(db)
	seedSettings(db)
}

func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	allSlots := domain.Slots()

	defaults := []models.Service{
		{Name: "Corte Tradicional", Description: "Corte clássico com tesoura e máquina, finalização com styling", DurationMin: 30, Price: 45},
		{Name: "Barba Completa", Description: "Aparar, desenhar e hidratação com toalha quente", DurationMin: 25, Price: 35},
		{Name: "Corte + Barba", Description: "Combo completo: corte tradicional e barba", DurationMin: 50, Price: 70},
		{Name: "Corte Degradê", Description: "Corte moderno com degradê personalizado", DurationMin: 40, Price: 55},
		{Name: "Hidratação Capilar", Description: "Tratamento profundo para cabelos ressecados", DurationMin: 30, Price: 40},
		{Name: "Pigmentação de Barba", Description: "Coloração natural para barba com falhas", DurationMin: 45, Price: 60},
	}

	for i := range defaults {
		defaults[i].ID = uuid.NewString()
		defaults[i].AvailableTimes = allSlots
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("seed services failed: %v", err)
	}
}

func seedBarbers(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return
	}

	// Vincula os barbeiros padrão aos serviços na ordem do catálogo
	var serviceIDs []string
	db.Model(&models.Service{}).
		Order("created_at ASC").
		Limit(6).
		Pluck("id", &serviceIDs)

	pick := func(idx ...int) models.StringList {
		var out models.StringList
		for _, i := range idx {
			if i < len(serviceIDs) {
				out = append(out, serviceIDs[i])
			}
		}
		return out
	}

	defaults := []models.Barber{
		{ID: uuid.NewString(), Name: "Carlos Silva", Specialty: "Cortes Clássicos", Available: true, ServiceIDs: pick(0, 1, 2, 3), Rating: 4.9, TotalRatings: 150},
		{ID: uuid.NewString(), Name: "Rafael Santos", Specialty: "Degradê & Fade", Available: true, ServiceIDs: pick(0, 2, 3, 4), Rating: 4.8, TotalRatings: 120},
		{ID: uuid.NewString(), Name: "Marcos Oliveira", Specialty: "Barba & Tratamentos", Available: true, ServiceIDs: pick(1, 2, 4, 5), Rating: 4.7, TotalRatings: 95},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("seed barbers failed: %v", err)
	}
}

func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.SiteSettings{
		ID:              1,
		LogoName:        "BarberPro",
		LogoIcon:        "scissors",
		PrimaryColor:    "#d4a855",
		SecondaryColor:  "#c75a3a",
		BackgroundColor: "#1a1a1f",
		HeroTitle:       "Estilo e Precisão em Cada Corte",
		HeroDescription: "Experimente o melhor em cuidados masculinos. Nossa equipe de barbeiros especializados está pronta para transformar seu visual com cortes impecáveis e tratamentos exclusivos.",
		YearsExperience: 8,
		HeaderTagline:   "Barbearia Premium desde 2015",
		AboutTitle:      "Sobre a BarberPro",
		AboutDescription: "Fundada em 2015, a BarberPro nasceu da paixão por transformar a experiência de cuidados masculinos em algo verdadeiramente especial. " +
			"Acreditamos que cada cliente merece um tratamento personalizado e de excelência.",
		AboutMission: "Proporcionar experiências únicas de cuidados masculinos, combinando técnicas tradicionais com tendências modernas, em um ambiente acolhedor e sofisticado.",
		AboutVision:  "Ser referência em barbearia premium, reconhecida pela qualidade excepcional dos serviços e pelo compromisso com a satisfação de cada cliente.",
	}

	if err := db.Create(&settings).Error; err != nil {
		log.Printf("seed settings failed: %v", err)
	}
}
