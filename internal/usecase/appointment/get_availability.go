package appointment

import (
	"context"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários livres de um barbeiro numa data, na ordem da
// grade. Leitura pura: pode ser chamado a cada mudança de seleção no site.
// Lista vazia significa "dia lotado", nunca erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	// 1. Grade canônica, ou a grade restrita do serviço quando houver.
	// Serviço desconhecido cai de volta na grade completa.
	candidates := domain.Slots()

	if in.ServiceID != "" {
		svc, err := uc.repo.GetService(ctx, in.ServiceID)
		if err == nil && len(svc.AvailableTimes) > 0 {
			candidates = append([]string(nil), svc.AvailableTimes...)
		}
	}

	// 2. Horários já ocupados por agendamentos não rejeitados.
	// Barbeiro desconhecido resulta em exclusão vazia.
	booked, err := uc.repo.ListBookedTimes(ctx, in.Date, in.BarberID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := taken[slot]; ok {
			continue
		}
		available = append(available, slot)
	}

	return available, nil
}
