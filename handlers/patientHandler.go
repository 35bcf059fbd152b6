package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service   *services.PatientService
	directory *services.DirectoryService
}

func NewPatientHandler(service *services.PatientService, directory *services.DirectoryService) *PatientHandler {
	return &PatientHandler{service: service, directory: directory}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatientData(patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &patient); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("id")
	patient, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

// GetAllPatients lists patients with doctor names and bed labels rendered,
// narrowed by the optional ?search= query.
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.directory.ListPatients(c, c.Query("search"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("id")
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.ID = id
	if err := utils.ValidatePatientData(patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &patient); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}
