package booking

import "fmt"

// ===============================
// Grade canônica de horários
// ===============================

const (
	openingHour = 7
	closingHour = 23
	slotStepMin = 5

	// Slot extra de meia-noite no fim da grade. Ele quebra a ordem
	// lexicográfica: quem ordenar as strings precisa tratá-lo à parte.
	midnightSlot = "00:00"
)

var canonicalSlots = buildSlots()

func buildSlots() []string {
	var slots []string
	for hour := openingHour; hour <= closingHour; hour++ {
		for minute := 0; minute < 60; minute += slotStepMin {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return append(slots, midnightSlot)
}

// Slots devolve a grade completa de horários agendáveis do dia, de "07:00"
// a "23:55" em passos de 5 minutos, mais "00:00" no final. Sempre retorna
// uma cópia: quem chama pode filtrar à vontade.
func Slots() []string {
	out := make([]string, len(canonicalSlots))
	copy(out, canonicalSlots)
	return out
}
