package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberpro_bookings_created_total",
		Help: "Agendamentos criados pelo site público.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberpro_booking_conflicts_total",
		Help: "Tentativas de agendamento rejeitadas por horário ocupado.",
	})

	AppointmentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberpro_appointments_completed_total",
		Help: "Agendamentos marcados como concluídos pelo admin.",
	})
)

func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
