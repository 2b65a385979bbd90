package appointment

import (
	"context"
	"time"

	"github.com/VenturaVini/barbearia/internal/cache"
	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	slots *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	slots *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
	}
}

// Execute monta a grade de horários livres do barbeiro na data, andando
// de duração em duração a partir das 10:00 até o último slot que termina
// às 19:00 em ponto.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if cached, ok := uc.slots.Get(ctx, in); ok {
		return cached, nil
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsBarber {
		return nil, domain.ErrNotABarber
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	daysOff, err := uc.repo.ListUnavailableDays(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// Dia de folga: grade vazia, sem erro.
	if !domain.IsAvailable(daysOff, in.Date) {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		domain.OpeningHour, 0, 0, 0,
		loc,
	)
	dayEnd := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		domain.ClosingHour, 0, 0, 0,
		loc,
	)

	booked, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		if domain.HasConflict(booked, slotStart, slotEnd, 0) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		})
	}

	uc.slots.Set(ctx, in, slots)

	return slots, nil
}
