package appointment

import (
	"context"

	"github.com/VenturaVini/barbearia/internal/audit"
	"github.com/VenturaVini/barbearia/internal/cache"
	"github.com/VenturaVini/barbearia/internal/clock"
	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/httperr"
	"github.com/VenturaVini/barbearia/internal/middleware"
	"github.com/VenturaVini/barbearia/internal/models"
)

type CancelAppointmentInput struct {
	AppointmentID uint
	ActorID       uint
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.AvailabilityCache
	clock clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots *cache.AvailabilityCache,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
		clock: clk,
	}
}

// Clientes só cancelam até 3h antes do início; barbeiro e staff cancelam
// a qualquer momento, desde que o agendamento não esteja encerrado.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	actor, err := uc.repo.GetUser(ctx, in.ActorID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if actor.ID != ap.ClientID && actor.ID != ap.BarberID && !actor.IsStaff {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	now := uc.clock.Now()

	if actor.ID == ap.ClientID && !actor.IsStaff {
		err = domain.Cancel(ap, now)
	} else {
		err = domain.ForceCancel(ap, now)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, ap.BarberID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		UserID:    &in.ActorID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: middleware.RequestIDFromContext(ctx),
	})

	return ap, nil
}
