package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusDone      Status = "DONE"
	StatusCancelled Status = "CANCELED"
)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusPending
}

// IsActive diz se o agendamento conta para conflito de horário.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal diz se o agendamento não admite mais transições.
func IsTerminal(s Status) bool {
	return s == StatusDone || s == StatusCancelled
}
