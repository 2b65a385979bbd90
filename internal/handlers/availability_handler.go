package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/httperr"
	"github.com/VenturaVini/barbearia/internal/httpresp"
	ucAppointment "github.com/VenturaVini/barbearia/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availability *ucAppointment.GetAvailability
	tz           string
}

func NewAvailabilityHandler(
	availability *ucAppointment.GetAvailability,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		tz:           tz,
	}
}

// Get devolve a grade de horários livres de um barbeiro para um serviço
// em uma data. Endpoint público: clientes consultam antes de agendar.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := parseDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}
