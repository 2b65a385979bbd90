package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
)

func TestBookAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	uc := NewBookAppointment(repo, nil, nil)

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  2,
		BarberID:  1,
		ServiceID: 1,
		Start:     start,
		Notes:     "primeira vez",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ID == 0 {
		t.Fatalf("appointment not persisted")
	}
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("status = %s, want PENDING", ap.Status)
	}

	// end_time derivado da duração do serviço
	if got, want := ap.EndTime.Sub(ap.StartTime), 30*time.Minute; got != want {
		t.Fatalf("duration = %v, want %v", got, want)
	}
}

func TestBookAppointment_AdjacentSlotsAccepted(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	uc := NewBookAppointment(repo, nil, nil)
	ctx := context.Background()

	first := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	if _, err := uc.Execute(ctx, BookAppointmentInput{ClientID: 2, BarberID: 1, ServiceID: 1, Start: first}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 10:30 encosta no fim do primeiro: aceito
	if _, err := uc.Execute(ctx, BookAppointmentInput{ClientID: 2, BarberID: 1, ServiceID: 1, Start: first.Add(30 * time.Minute)}); err != nil {
		t.Fatalf("adjacent booking must be accepted, got %v", err)
	}

	// 10:15 invade: rejeitado
	_, err := uc.Execute(ctx, BookAppointmentInput{ClientID: 2, BarberID: 1, ServiceID: 1, Start: first.Add(15 * time.Minute)})
	if !errors.Is(err, domain.ErrTimeSlotConflict) {
		t.Fatalf("err = %v, want ErrTimeSlotConflict", err)
	}
}

func TestBookAppointment_DayOffRejected(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)
	repo.daysOff = append(repo.daysOff, dayOff(1, 2024, 6, 1))

	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  2,
		BarberID:  1,
		ServiceID: 1,
		Start:     time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domain.ErrBarberUnavailable) {
		t.Fatalf("err = %v, want ErrBarberUnavailable", err)
	}
}

func TestBookAppointment_NonBarberRejected(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  2,
		BarberID:  2, // cliente comum
		ServiceID: 1,
		Start:     time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domain.ErrNotABarber) {
		t.Fatalf("err = %v, want ErrNotABarber", err)
	}
}

func TestBookAppointment_CancelledSlotIsFree(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	uc := NewBookAppointment(repo, nil, nil)
	ctx := context.Background()

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	ap, err := uc.Execute(ctx, BookAppointmentInput{ClientID: 2, BarberID: 1, ServiceID: 1, Start: start})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	stored := repo.appointments[ap.ID]
	stored.Status = string(domain.StatusCancelled)

	if _, err := uc.Execute(ctx, BookAppointmentInput{ClientID: 2, BarberID: 1, ServiceID: 1, Start: start}); err != nil {
		t.Fatalf("cancelled slot must be bookable again, got %v", err)
	}
}
