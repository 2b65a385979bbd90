package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo é um repositório em memória para os testes de caso de uso.
type fakeRepo struct {
	users        map[uint]*models.User
	services     map[uint]*models.Service
	daysOff      []models.UnavailableDay
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) ListUnavailableDays(_ context.Context, barberID uint) ([]models.UnavailableDay, error) {
	var out []models.UnavailableDay
	for _, d := range f.daysOff {
		if d.BarberID == barberID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindActiveAppointments(_ context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && domain.IsActive(domain.Status(ap.Status)) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errNotFound
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// fixtures
// --------------------------------------------------

func seedBarberAndService(f *fakeRepo) {
	f.users[1] = &models.User{ID: 1, Username: "joao", IsBarber: true}
	f.users[2] = &models.User{ID: 2, Username: "cliente"}
	f.services[1] = &models.Service{ID: 1, Name: "Corte", DurationMin: 30, Price: 50}
}

func dayOff(barberID uint, year int, month time.Month, day int) models.UnavailableDay {
	return models.UnavailableDay{
		BarberID: barberID,
		Date:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Reason:   "Unavailable",
	}
}
