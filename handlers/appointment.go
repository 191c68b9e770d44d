package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking creation and lookup.
type AppointmentHandler struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Logger: logger}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		UserDetails models.UserDetails `json:"userDetails" binding:"required"`
		TimeSlot    models.TimeSlot    `json:"timeSlot" binding:"required"`
		Amount      float64            `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt := models.Appointment{
		BookingID:   uuid.New().String(),
		UserDetails: input.UserDetails,
		TimeSlot:    input.TimeSlot,
		Amount:      input.Amount,
	}
	if err := h.Repo.Create(&appt); err != nil {
		h.Logger.Error("failed to create appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// GetAppointmentHandler handles GET /api/appointments/:bookingID.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	appt, err := h.Repo.GetByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.Logger.Error("failed to fetch appointment", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointment", "")
		return
	}
	c.JSON(http.StatusOK, appt)
}
