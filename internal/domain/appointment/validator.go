package appointment

import (
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// ValidationInput carrega todos os dados já buscados de que a decisão
// precisa. Validate é uma função pura: não consulta banco nem relógio.
type ValidationInput struct {
	Barber  *models.User
	Service *models.Service
	Start   time.Time

	// Folgas do barbeiro e agendamentos vigentes, fornecidos pelo
	// colaborador de persistência dentro da mesma unidade atômica
	// que fará o insert/update.
	DaysOff []models.UnavailableDay
	Booked  []models.Appointment

	// Id do agendamento em edição, excluído da checagem de conflito.
	// Zero em criação.
	ExcludeID uint
}

// ======================================================
// VALIDATE
// ======================================================

// Validate aplica as regras de admissão na ordem fixa do contrato e
// para na primeira violada. Em caso de sucesso devolve o horário de
// término derivado da duração do serviço, para a camada chamadora
// persistir. Nunca altera estado.
func Validate(in ValidationInput) (time.Time, error) {

	if in.Barber == nil || !in.Barber.IsBarber {
		return time.Time{}, ErrNotABarber
	}

	if !IsWithinBusinessHours(in.Start) {
		return time.Time{}, ErrOutsideBusinessHours
	}

	if !IsAvailable(in.DaysOff, in.Start) {
		return time.Time{}, ErrBarberUnavailable
	}

	end := in.Start.Add(time.Duration(in.Service.DurationMin) * time.Minute)
	if !IsWithinBusinessHours(end) {
		return time.Time{}, ErrServiceExtendsPastClosing
	}

	if HasConflict(in.Booked, in.Start, end, in.ExcludeID) {
		return time.Time{}, ErrTimeSlotConflict
	}

	return end, nil
}
