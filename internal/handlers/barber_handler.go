package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenturaVini/barbearia/internal/httpresp"
	"github.com/VenturaVini/barbearia/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// List expõe o diretório público de barbeiros.
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("is_barber = ?", true).
		Order("username ASC").
		Find(&barbers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	out := make([]BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberDTO{
			ID:       b.ID,
			Username: b.Username,
			Email:    b.Email,
		})
	}

	httpresp.List(c, out)
}
