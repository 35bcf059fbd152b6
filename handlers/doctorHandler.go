package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service   *services.DoctorService
	directory *services.DirectoryService
}

func NewDoctorHandler(service *services.DoctorService, directory *services.DirectoryService) *DoctorHandler {
	return &DoctorHandler{service: service, directory: directory}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateDoctorData(doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &doctor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, doctor)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id := c.Param("id")
	doctor, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if doctor == nil {
		c.JSON(404, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.directory.ListDoctors(c, c.Query("search"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, doctors)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id := c.Param("id")
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	doctor.ID = id
	if err := utils.ValidateDoctorData(doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &doctor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Doctor deleted"})
}

// GetDoctorAvailability answers whether the doctor works on the weekday of
// the optional ?date= (YYYY-MM-DD, defaults to today).
func (h *DoctorHandler) GetDoctorAvailability(c *gin.Context) {
	id := c.Param("id")
	doctor, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if doctor == nil {
		c.JSON(404, gin.H{"error": "Doctor not found"})
		return
	}

	date := c.Query("date")
	available, err := services.DoctorAvailableOn(doctor, date)
	if err != nil {
		writeError(c, err)
		return
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	c.JSON(200, gin.H{
		"doctor_id":    doctor.ID,
		"date":         date,
		"available":    available,
		"availability": doctor.Availability,
	})
}
