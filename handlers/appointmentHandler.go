package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service   *services.AppointmentService
	directory *services.DirectoryService
}

func NewAppointmentHandler(service *services.AppointmentService, directory *services.DirectoryService) *AppointmentHandler {
	return &AppointmentHandler{service: service, directory: directory}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if appointment.Status == "" {
		appointment.Status = "scheduled"
	}
	if err := utils.ValidateAppointmentData(appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &appointment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	appointment, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

// GetAllAppointments lists appointments with participant names rendered,
// narrowed by the optional ?search= query.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.directory.ListAppointments(c, c.Query("search"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ID = uint(id)
	if err := utils.ValidateAppointmentData(appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &appointment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
