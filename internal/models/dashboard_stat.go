package models

import "time"

// DashboardStat acumula cortes concluídos por (ano, mês).
// Os contadores só crescem: não existe caminho de decremento.
type DashboardStat struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Year  int `gorm:"uniqueIndex:idx_dashboard_stats_month" json:"year"`
	Month int `gorm:"uniqueIndex:idx_dashboard_stats_month" json:"month"`

	TotalCuts    int     `json:"total_cuts"`
	TotalRevenue float64 `json:"total_revenue"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
