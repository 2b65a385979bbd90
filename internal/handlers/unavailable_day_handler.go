package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenturaVini/barbearia/internal/httperr"
	"github.com/VenturaVini/barbearia/internal/httpresp"
	"github.com/VenturaVini/barbearia/internal/middleware"
	"github.com/VenturaVini/barbearia/internal/models"
)

// Folgas pertencem ao barbeiro autenticado; ninguém gerencia folga alheia.
type UnavailableDayHandler struct {
	db  *gorm.DB
	loc string
}

func NewUnavailableDayHandler(db *gorm.DB, tz string) *UnavailableDayHandler {
	return &UnavailableDayHandler{db: db, loc: tz}
}

type UnavailableDayRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

func (h *UnavailableDayHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var days []models.UnavailableDay
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		httperr.Internal(c, "failed_to_list_days", "Erro ao listar folgas.")
		return
	}

	httpresp.List(c, days)
}

func (h *UnavailableDayHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req UnavailableDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "Unavailable"
	}

	day := models.UnavailableDay{
		BarberID: barberID,
		Date:     date,
		Reason:   reason,
	}

	if err := h.db.Create(&day).Error; err != nil {
		// par (barbeiro, data) é único
		httperr.BadRequest(c, "day_already_registered", "Folga já registrada para esta data.")
		return
	}

	httpresp.Created(c, day)
}

func (h *UnavailableDayHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var day models.UnavailableDay
	if err := h.db.
		Where("id = ? AND barber_id = ?", c.Param("id"), barberID).
		First(&day).Error; err != nil {
		httperr.NotFound(c, "day_not_found", "Folga não encontrada.")
		return
	}

	if err := h.db.Delete(&day).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_day", "Erro ao remover folga.")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
