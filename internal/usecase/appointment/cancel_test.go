package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VenturaVini/barbearia/internal/clock"
	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
)

func TestCancel_ClientBeforeCutoff(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	id := bookAt(t, repo, start)

	// exatamente no corte de 3h
	clk := clock.Fixed{Time: start.Add(-3 * time.Hour)}
	uc := NewCancelAppointment(repo, nil, nil, clk)

	ap, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: id,
		ActorID:       2,
	})
	if err != nil {
		t.Fatalf("cancel at exact cutoff must succeed, got %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want CANCELED", ap.Status)
	}
}

func TestCancel_ClientInsideWindowRejected(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	id := bookAt(t, repo, start)

	clk := clock.Fixed{Time: start.Add(-3*time.Hour + time.Second)}
	uc := NewCancelAppointment(repo, nil, nil, clk)

	_, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: id,
		ActorID:       2,
	})
	if !errors.Is(err, domain.ErrCancellationWindowExpired) {
		t.Fatalf("err = %v, want ErrCancellationWindowExpired", err)
	}
}

func TestCancel_BarberInsideWindowAllowed(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	id := bookAt(t, repo, start)

	clk := clock.Fixed{Time: start.Add(-time.Hour)}
	uc := NewCancelAppointment(repo, nil, nil, clk)

	ap, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: id,
		ActorID:       1, // o próprio barbeiro
	})
	if err != nil {
		t.Fatalf("barber cancel inside window must succeed, got %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want CANCELED", ap.Status)
	}
}

func TestCancel_TerminalStateRejected(t *testing.T) {
	repo := newFakeRepo()
	seedBarberAndService(repo)

	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	id := bookAt(t, repo, start)
	repo.appointments[id].Status = string(domain.StatusDone)

	clk := clock.Fixed{Time: start.Add(-24 * time.Hour)}
	uc := NewCancelAppointment(repo, nil, nil, clk)

	_, err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: id,
		ActorID:       1,
	})
	if !errors.Is(err, domain.ErrTerminalStateTransition) {
		t.Fatalf("err = %v, want ErrTerminalStateTransition", err)
	}
}
