package appointment

import "github.com/VenturaVini/barbearia/internal/httperr"

// Toda rejeição deste pacote é um erro de negócio recuperável,
// mapeado para 4xx pela camada HTTP.
var (
	ErrNotABarber                = httperr.ErrBusiness("not_a_barber")
	ErrOutsideBusinessHours      = httperr.ErrBusiness("outside_business_hours")
	ErrBarberUnavailable         = httperr.ErrBusiness("barber_unavailable")
	ErrServiceExtendsPastClosing = httperr.ErrBusiness("service_extends_past_closing")
	ErrTimeSlotConflict          = httperr.ErrBusiness("time_slot_conflict")
	ErrCancellationWindowExpired = httperr.ErrBusiness("cancellation_window_expired")
	ErrTerminalStateTransition   = httperr.ErrBusiness("terminal_state_transition")
	ErrInvalidState              = httperr.ErrBusiness("invalid_state")
)
