package handlers

import (
	"CareDesk/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	directory *services.DirectoryService
}

func NewDashboardHandler(directory *services.DirectoryService) *DashboardHandler {
	return &DashboardHandler{directory: directory}
}

// GetStats returns the front-desk overview counters.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.directory.GetDashboardStats(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, stats)
}
