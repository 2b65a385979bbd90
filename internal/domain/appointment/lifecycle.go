package appointment

import (
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

// Prazo mínimo de antecedência para o cliente cancelar.
const CancellationNotice = 3 * time.Hour

// ===============================
// Predicados (sem efeito colateral)
// ===============================

// CanCancel: estados terminais nunca cancelam; fora deles o pedido vale
// até exatamente 3h antes do início (o instante do corte ainda é válido).
func CanCancel(ap *models.Appointment, now time.Time) error {
	if IsTerminal(Status(ap.Status)) {
		return ErrTerminalStateTransition
	}

	deadline := ap.StartTime.Add(-CancellationNotice)
	if now.After(deadline) {
		return ErrCancellationWindowExpired
	}
	return nil
}

// CanReschedule: apenas agendamentos vigentes podem ser remarcados.
func CanReschedule(ap *models.Appointment) error {
	if IsTerminal(Status(ap.Status)) {
		return ErrTerminalStateTransition
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return ErrInvalidState
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

// ===============================
// Transições
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ap, now); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ForceCancel ignora a janela de antecedência; reservado a barbeiro/staff.
func ForceCancel(ap *models.Appointment, now time.Time) error {
	if IsTerminal(Status(ap.Status)) {
		return ErrTerminalStateTransition
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDone)
	ap.CompletedAt = &now
	return nil
}

// Reschedule move o agendamento para o novo intervalo já validado,
// sem mexer no status.
func Reschedule(ap *models.Appointment, start, end time.Time) error {
	if err := CanReschedule(ap); err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = end
	return nil
}
