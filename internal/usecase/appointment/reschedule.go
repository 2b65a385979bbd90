package appointment

import (
	"context"
	"time"

	"github.com/VenturaVini/barbearia/internal/audit"
	"github.com/VenturaVini/barbearia/internal/cache"
	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/httperr"
	"github.com/VenturaVini/barbearia/internal/middleware"
	"github.com/VenturaVini/barbearia/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	ActorID       uint
	NewStart      time.Time
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.AvailabilityCache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.AvailabilityCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// O agendamento revalida o novo horário excluindo o próprio id da checagem
// de conflito: remarcar para dentro do slot original é legal. O horário de
// término continua derivado do serviço original (serviço não muda aqui).
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	var updated *models.Appointment
	var previousStart time.Time

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		actor, err := tx.GetUser(ctx, in.ActorID)
		if err != nil {
			return httperr.ErrBusiness("user_not_found")
		}

		if actor.ID != ap.ClientID && actor.ID != ap.BarberID && !actor.IsStaff {
			return httperr.ErrBusiness("not_allowed")
		}

		if err := domain.CanReschedule(ap); err != nil {
			return err
		}

		barber, err := tx.GetUser(ctx, ap.BarberID)
		if err != nil {
			return err
		}

		service, err := tx.GetService(ctx, ap.ServiceID)
		if err != nil {
			return err
		}

		daysOff, err := tx.ListUnavailableDays(ctx, ap.BarberID)
		if err != nil {
			return err
		}

		booked, err := tx.FindActiveAppointments(ctx, ap.BarberID)
		if err != nil {
			return err
		}

		end, err := domain.Validate(domain.ValidationInput{
			Barber:    barber,
			Service:   service,
			Start:     in.NewStart,
			DaysOff:   daysOff,
			Booked:    booked,
			ExcludeID: ap.ID,
		})
		if err != nil {
			return err
		}

		previousStart = ap.StartTime

		if err := domain.Reschedule(ap, in.NewStart, end); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, domain.ErrTimeSlotConflict
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, updated.BarberID, previousStart)
	uc.slots.Invalidate(ctx, updated.BarberID, updated.StartTime)

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.ActorID,
		Action:    "appointment_rescheduled",
		Entity:    "appointment",
		EntityID:  &updated.ID,
		RequestID: middleware.RequestIDFromContext(ctx),
		Metadata: map[string]any{
			"from": previousStart,
			"to":   updated.StartTime,
		},
	})

	return updated, nil
}
