package appointment

import "time"

// Horário de funcionamento fixo da barbearia: 10:00–19:00,
// ambos os limites inclusivos (um serviço pode terminar às 19:00 em ponto).
const (
	OpeningHour = 10
	ClosingHour = 19
)

// IsWithinBusinessHours valida apenas a hora do dia do instante,
// independente da data.
func IsWithinBusinessHours(t time.Time) bool {
	h, m, s := t.Clock()
	secs := h*3600 + m*60 + s
	return secs >= OpeningHour*3600 && secs <= ClosingHour*3600
}
