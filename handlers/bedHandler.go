package handlers

import (
	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	service    *services.BedService
	allocation *services.AllocationService
	directory  *services.DirectoryService
}

func NewBedHandler(service *services.BedService, allocation *services.AllocationService, directory *services.DirectoryService) *BedHandler {
	return &BedHandler{service: service, allocation: allocation, directory: directory}
}

func (h *BedHandler) CreateBed(c *gin.Context) {
	var bed models.Bed
	if err := c.ShouldBindJSON(&bed); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateBedData(bed); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &bed); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(201, bed)
}

func (h *BedHandler) GetBedByID(c *gin.Context) {
	id := c.Param("id")
	bed, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if bed == nil {
		c.JSON(404, gin.H{"error": "Bed not found"})
		return
	}
	c.JSON(200, bed)
}

func (h *BedHandler) GetAllBeds(c *gin.Context) {
	beds, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, beds)
}

// GetBedsGroupedByWard returns the ward -> beds map used by the bed board.
func (h *BedHandler) GetBedsGroupedByWard(c *gin.Context) {
	grouped, err := h.directory.GroupBedsByWard(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, grouped)
}

func (h *BedHandler) UpdateBed(c *gin.Context) {
	id := c.Param("id")
	var bed models.Bed
	if err := c.ShouldBindJSON(&bed); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	bed.ID = id
	if err := utils.ValidateBedData(bed); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &bed); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, bed)
}

func (h *BedHandler) DeleteBed(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Bed deleted"})
}

type allocateBedRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	BedID     string `json:"bed_id" binding:"required"`
	DoctorID  string `json:"doctor_id"`
}

// AllocateBed assigns a free bed (and optionally a doctor) to a patient.
func (h *BedHandler) AllocateBed(c *gin.Context) {
	var req allocateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.allocation.AllocateBed(c, req.PatientID, req.BedID, req.DoctorID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Bed allocated"})
}

// DischargeBed frees a bed and clears its occupant's assignment. The
// response carries a warning when the occupancy flag had to be repaired.
func (h *BedHandler) DischargeBed(c *gin.Context) {
	id := c.Param("id")
	result, err := h.allocation.DischargeBed(c, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, result)
}
