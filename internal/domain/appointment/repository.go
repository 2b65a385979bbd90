package appointment

import (
	"context"
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

type Repository interface {
	// -------- User / Service --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Unavailable days --------
	ListUnavailableDays(
		ctx context.Context,
		barberID uint,
	) ([]models.UnavailableDay, error)

	// -------- Appointment (create / update) --------
	// FindActiveAppointments trava as linhas lidas quando chamado dentro
	// de InTransaction; a leitura + insert formam a unidade atômica que
	// impede double-booking.
	FindActiveAppointments(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Queries --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Atomicidade --------
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
