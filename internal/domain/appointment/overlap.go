package appointment

import (
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

// HasConflict varre os agendamentos do barbeiro e decide se o intervalo
// proposto [start, end) colide com algum agendamento ativo. Intervalos
// meio-abertos: agendamentos encostados (fim == início) não conflitam.
// excludeID ignora o próprio agendamento durante uma edição (0 = criação).
func HasConflict(
	existing []models.Appointment,
	start time.Time,
	end time.Time,
	excludeID uint,
) bool {

	for _, ap := range existing {
		if !IsActive(Status(ap.Status)) {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return true
		}
	}

	return false
}
