package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	ClientName    string    `json:"client_name"`
	BarberName    string    `json:"barber_name"`
	ServiceName   string    `json:"service_name"`
	CanCancel     bool      `json:"can_cancel"`
	CanReschedule bool      `json:"can_reschedule"`
}
