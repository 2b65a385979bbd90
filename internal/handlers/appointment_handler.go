package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenturaVini/barbearia/internal/clock"
	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
	"github.com/VenturaVini/barbearia/internal/dto"
	"github.com/VenturaVini/barbearia/internal/httperr"
	"github.com/VenturaVini/barbearia/internal/httpresp"
	"github.com/VenturaVini/barbearia/internal/middleware"
	"github.com/VenturaVini/barbearia/internal/models"
	"github.com/VenturaVini/barbearia/internal/timezone"
	ucAppointment "github.com/VenturaVini/barbearia/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db         *gorm.DB
	book       *ucAppointment.BookAppointment
	reschedule *ucAppointment.RescheduleAppointment
	cancel     *ucAppointment.CancelAppointment
	confirm    *ucAppointment.ConfirmAppointment
	complete   *ucAppointment.CompleteAppointment
	clock      clock.Clock
	tz         string
}

func NewAppointmentHandler(
	db *gorm.DB,
	book *ucAppointment.BookAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
	clk clock.Clock,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		book:       book,
		reschedule: reschedule,
		cancel:     cancel,
		confirm:    confirm,
		complete:   complete,
		clock:      clk,
		tz:         tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:  clientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Start:     start,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, h.toDTO(ap))
}

// ======================================================
// LIST / TODAY
// ======================================================

// List filtra pela identidade do usuário: staff enxerga tudo, barbeiro a
// própria agenda, cliente os próprios agendamentos.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	isBarber := c.MustGet(middleware.ContextIsBarber).(bool)
	isStaff := c.MustGet(middleware.ContextIsStaff).(bool)

	q := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	switch {
	case isStaff:
	case isBarber:
		q = q.Where("barber_id = ?", userID)
	default:
		q = q.Where("client_id = ?", userID)
	}

	if s := c.Query("start_date"); s != "" {
		if d, err := parseDate(s, h.tz); err == nil {
			q = q.Where("start_time >= ?", d)
		}
	}
	if s := c.Query("end_date"); s != "" {
		if d, err := parseDate(s, h.tz); err == nil {
			q = q.Where("start_time < ?", d.AddDate(0, 0, 1))
		}
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, h.toDTO(&aps[i]))
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	isBarber := c.MustGet(middleware.ContextIsBarber).(bool)
	isStaff := c.MustGet(middleware.ContextIsStaff).(bool)

	now := h.clock.Now().In(timezone.Location(h.tz))
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	q := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd)

	switch {
	case isStaff:
	case isBarber:
		q = q.Where("barber_id = ?", userID)
	default:
		q = q.Where("client_id = ?", userID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, h.toDTO(&aps[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// RESCHEDULE / CANCEL
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: uint(id),
		ActorID:       actorID,
		NewStart:      start,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID: uint(id),
		ActorID:       actorID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

// ======================================================
// CONFIRM / COMPLETE (barbeiro)
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), uint(id), barberID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), uint(id), barberID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) toDTO(ap *models.Appointment) dto.AppointmentListDTO {
	now := h.clock.Now()

	return dto.AppointmentListDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		Notes:         ap.Notes,
		ClientName:    ap.Client.Username,
		BarberName:    ap.Barber.Username,
		ServiceName:   ap.Service.Name,
		CanCancel:     domain.CanCancel(ap, now) == nil,
		CanReschedule: domain.CanReschedule(ap) == nil,
	}
}

func writeBusinessError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		status := http.StatusBadRequest
		switch be.Code {
		case "appointment_not_found", "barber_not_found", "service_not_found", "user_not_found":
			status = http.StatusNotFound
		case "not_allowed":
			status = http.StatusForbidden
		}
		httperr.Write(c, status, be.Code, be.Error())
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
