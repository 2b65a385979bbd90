package appointment

import (
	"testing"
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

func ap(id uint, status Status, startHour, startMin, durMin int) models.Appointment {
	start := time.Date(2024, 6, 10, startHour, startMin, 0, 0, time.UTC)
	return models.Appointment{
		ID:        id,
		BarberID:  1,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durMin) * time.Minute),
		Status:    string(status),
	}
}

func interval(startHour, startMin, durMin int) (time.Time, time.Time) {
	start := time.Date(2024, 6, 10, startHour, startMin, 0, 0, time.UTC)
	return start, start.Add(time.Duration(durMin) * time.Minute)
}

func TestHasConflict_TouchingBoundaryIsNotAConflict(t *testing.T) {
	booked := []models.Appointment{ap(1, StatusPending, 10, 0, 30)}

	// 10:30–11:00 encosta em 10:00–10:30
	start, end := interval(10, 30, 30)
	if HasConflict(booked, start, end, 0) {
		t.Fatalf("touching intervals should not conflict")
	}

	// 09:30–10:00 encosta por baixo
	start, end = interval(9, 30, 30)
	if HasConflict(booked, start, end, 0) {
		t.Fatalf("touching intervals should not conflict")
	}
}

func TestHasConflict_OverlapDetected(t *testing.T) {
	booked := []models.Appointment{ap(1, StatusConfirmed, 10, 0, 30)}

	// 10:15–10:45 invade 10:00–10:30
	start, end := interval(10, 15, 30)
	if !HasConflict(booked, start, end, 0) {
		t.Fatalf("overlapping intervals should conflict")
	}

	// intervalo que engole o existente
	start, end = interval(9, 0, 180)
	if !HasConflict(booked, start, end, 0) {
		t.Fatalf("containing interval should conflict")
	}

	// mesmo intervalo
	start, end = interval(10, 0, 30)
	if !HasConflict(booked, start, end, 0) {
		t.Fatalf("identical interval should conflict")
	}
}

func TestHasConflict_TerminalStatusesNeverConflict(t *testing.T) {
	booked := []models.Appointment{
		ap(1, StatusCancelled, 10, 0, 30),
		ap(2, StatusDone, 10, 0, 30),
	}

	start, end := interval(10, 0, 30)
	if HasConflict(booked, start, end, 0) {
		t.Fatalf("cancelled/done appointments must not conflict")
	}
}

func TestHasConflict_ExcludesOwnIDOnEdit(t *testing.T) {
	booked := []models.Appointment{
		ap(7, StatusConfirmed, 10, 0, 30),
		ap(8, StatusConfirmed, 11, 0, 30),
	}

	// conflita apenas com o próprio slot: editar o 7 para o mesmo horário é legal
	start, end := interval(10, 0, 30)
	if HasConflict(booked, start, end, 7) {
		t.Fatalf("appointment must not conflict with itself during edit")
	}

	// mas continua conflitando com os demais
	start, end = interval(11, 15, 30)
	if !HasConflict(booked, start, end, 7) {
		t.Fatalf("edit must still conflict with other appointments")
	}
}
