package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DiagnosisHandler struct {
	service *services.DiagnosisService
}

func NewDiagnosisHandler(service *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: service}
}

func (h *DiagnosisHandler) CreateDiagnosis(c *gin.Context) {
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateDiagnosisData(diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &diagnosis); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, diagnosis)
}

func (h *DiagnosisHandler) GetDiagnosisByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid diagnosis ID"})
		return
	}
	diagnosis, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if diagnosis == nil {
		c.JSON(404, gin.H{"error": "Diagnosis not found"})
		return
	}
	c.JSON(200, diagnosis)
}

// GetAllDiagnoses lists diagnoses, narrowed to one patient by the optional
// ?patient= query.
func (h *DiagnosisHandler) GetAllDiagnoses(c *gin.Context) {
	patientID := c.Query("patient")
	var (
		diagnoses []models.Diagnosis
		err       error
	)
	if patientID != "" {
		diagnoses, err = h.service.GetByPatient(c, patientID)
	} else {
		diagnoses, err = h.service.GetAll(c)
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, diagnoses)
}

func (h *DiagnosisHandler) UpdateDiagnosis(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid diagnosis ID"})
		return
	}
	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	diagnosis.ID = uint(id)
	if err := utils.ValidateDiagnosisData(diagnosis); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &diagnosis); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, diagnosis)
}

func (h *DiagnosisHandler) DeleteDiagnosis(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid diagnosis ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Diagnosis deleted"})
}
