package models

import "time"

// Um registro por (barbeiro, data). A data bloqueia novos agendamentos,
// nunca os já existentes.
type UnavailableDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"uniqueIndex:idx_barber_date;not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_barber_date;not null" json:"date"`

	Reason string `gorm:"size:200;default:'Unavailable'" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
