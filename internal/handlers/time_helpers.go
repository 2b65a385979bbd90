package handlers

import (
	"time"

	"github.com/VenturaVini/barbearia/internal/timezone"
)

// Datas e horários chegam como strings locais e são normalizados para o
// fuso configurado antes de entrar no núcleo de validação.

func parseDate(s string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, timezone.Location(tz))
}

func parseDateTime(date string, hour string, tz string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+hour,
		timezone.Location(tz),
	)
}
