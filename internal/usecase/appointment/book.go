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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Start     time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.AvailabilityCache
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.AvailabilityCache,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// A leitura dos agendamentos ativos e o insert acontecem na mesma
// transação; a constraint de exclusão do Postgres cobre a corrida que a
// transação não cobrir.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		barber, err := tx.GetUser(ctx, in.BarberID)
		if err != nil {
			return httperr.ErrBusiness("barber_not_found")
		}

		service, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return httperr.ErrBusiness("service_not_found")
		}

		daysOff, err := tx.ListUnavailableDays(ctx, in.BarberID)
		if err != nil {
			return err
		}

		booked, err := tx.FindActiveAppointments(ctx, in.BarberID)
		if err != nil {
			return err
		}

		end, err := domain.Validate(domain.ValidationInput{
			Barber:  barber,
			Service: service,
			Start:   in.Start,
			DaysOff: daysOff,
			Booked:  booked,
		})
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			ClientID:  in.ClientID,
			BarberID:  in.BarberID,
			ServiceID: in.ServiceID,
			StartTime: in.Start,
			EndTime:   end,
			Status:    string(domain.InitialStatus()),
			Notes:     in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, domain.ErrTimeSlotConflict
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.BarberID, in.Start)

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.ClientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &created.ID,
		RequestID: middleware.RequestIDFromContext(ctx),
	})

	return created, nil
}
