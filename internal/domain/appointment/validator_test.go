package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/VenturaVini/barbearia/internal/models"
)

func validInput() ValidationInput {
	return ValidationInput{
		Barber:  &models.User{ID: 1, Username: "joao", IsBarber: true},
		Service: &models.Service{ID: 1, Name: "Corte", DurationMin: 30},
		Start:   time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestValidate_Success(t *testing.T) {
	in := validInput()

	end, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := in.Start.Add(30 * time.Minute)
	if !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	in := validInput()

	end1, err1 := Validate(in)
	end2, err2 := Validate(in)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !end1.Equal(end2) {
		t.Fatalf("same input produced different ends: %v vs %v", end1, end2)
	}
}

func TestValidate_NotABarber(t *testing.T) {
	in := validInput()
	in.Barber = &models.User{ID: 2, Username: "maria", IsBarber: false}

	if _, err := Validate(in); !errors.Is(err, ErrNotABarber) {
		t.Fatalf("err = %v, want ErrNotABarber", err)
	}
}

func TestValidate_OutsideBusinessHours(t *testing.T) {
	in := validInput()
	in.Start = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	if _, err := Validate(in); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Fatalf("err = %v, want ErrOutsideBusinessHours", err)
	}
}

func TestValidate_BarberUnavailable(t *testing.T) {
	in := validInput()
	in.Start = time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	in.DaysOff = []models.UnavailableDay{{
		BarberID: 1,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}}

	if _, err := Validate(in); !errors.Is(err, ErrBarberUnavailable) {
		t.Fatalf("err = %v, want ErrBarberUnavailable", err)
	}
}

func TestValidate_ClosingBoundary(t *testing.T) {
	// 18:30 + 30min termina exatamente às 19:00: aceito
	in := validInput()
	in.Start = time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC)

	end, err := Validate(in)
	if err != nil {
		t.Fatalf("service ending exactly at closing must be accepted, got %v", err)
	}
	if end.Hour() != 19 || end.Minute() != 0 {
		t.Fatalf("end = %v, want 19:00", end)
	}

	// 18:31 + 30min termina 19:01: rejeitado
	in.Start = time.Date(2024, 6, 10, 18, 31, 0, 0, time.UTC)
	if _, err := Validate(in); !errors.Is(err, ErrServiceExtendsPastClosing) {
		t.Fatalf("err = %v, want ErrServiceExtendsPastClosing", err)
	}
}

func TestValidate_TimeSlotConflict(t *testing.T) {
	in := validInput()
	in.Booked = []models.Appointment{ap(9, StatusPending, 14, 15, 30)}

	if _, err := Validate(in); !errors.Is(err, ErrTimeSlotConflict) {
		t.Fatalf("err = %v, want ErrTimeSlotConflict", err)
	}
}

func TestValidate_SelfExclusionOnEdit(t *testing.T) {
	in := validInput()
	in.Booked = []models.Appointment{ap(9, StatusPending, 14, 0, 30)}
	in.ExcludeID = 9

	if _, err := Validate(in); err != nil {
		t.Fatalf("edit over own slot must pass, got %v", err)
	}
}

// A ordem das checagens é fixa: a primeira regra violada define o erro.
func TestValidate_ShortCircuitOrder(t *testing.T) {
	in := validInput()
	in.Barber.IsBarber = false
	in.Start = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	in.Booked = []models.Appointment{ap(9, StatusPending, 9, 0, 30)}

	if _, err := Validate(in); !errors.Is(err, ErrNotABarber) {
		t.Fatalf("err = %v, want ErrNotABarber (first violated rule)", err)
	}
}
