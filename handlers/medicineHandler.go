package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MedicineHandler struct {
	service *services.MedicineService
}

func NewMedicineHandler(service *services.MedicineService) *MedicineHandler {
	return &MedicineHandler{service: service}
}

func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateMedicineData(medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &medicine); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, medicine)
}

func (h *MedicineHandler) GetMedicineByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medicine ID"})
		return
	}
	medicine, err := h.service.GetByID(c, uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if medicine == nil {
		c.JSON(404, gin.H{"error": "Medicine not found"})
		return
	}
	c.JSON(200, medicine)
}

// GetAllMedicines lists prescriptions, narrowed to one patient by the
// optional ?patient= query.
func (h *MedicineHandler) GetAllMedicines(c *gin.Context) {
	patientID := c.Query("patient")
	var (
		medicines []models.Medicine
		err       error
	)
	if patientID != "" {
		medicines, err = h.service.GetByPatient(c, patientID)
	} else {
		medicines, err = h.service.GetAll(c)
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medicines)
}

func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medicine ID"})
		return
	}
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medicine.ID = uint(id)
	if err := utils.ValidateMedicineData(medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &medicine); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, medicine)
}

func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medicine ID"})
		return
	}
	if err := h.service.Delete(c, uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Medicine deleted"})
}
