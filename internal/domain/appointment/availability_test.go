package appointment

import (
	"testing"
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

func TestIsAvailable(t *testing.T) {
	dayOff := models.UnavailableDay{
		BarberID: 1,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Reason:   "Unavailable",
	}

	if IsAvailable([]models.UnavailableDay{dayOff}, time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("barber with a day off must be unavailable on that date")
	}

	if !IsAvailable([]models.UnavailableDay{dayOff}, time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("day off must not block other dates")
	}

	if !IsAvailable(nil, time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("barber without days off is always available")
	}
}
