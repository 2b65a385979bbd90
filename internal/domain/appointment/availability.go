package appointment

import (
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

// IsAvailable diz se o barbeiro trabalha na data indicada: falso somente
// quando existe um dia de folga registrado para aquela data. Um barbeiro
// sem folgas cadastradas está sempre disponível.
func IsAvailable(daysOff []models.UnavailableDay, date time.Time) bool {
	for _, d := range daysOff {
		if SameDate(d.Date, date) {
			return false
		}
	}
	return true
}

// SameDate compara apenas a data de calendário, ignorando o horário.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
