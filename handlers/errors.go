package handlers

import (
	"CareDesk/services"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses: precondition failures
// are the caller's fault, missing records are 404, everything else is a
// server error.
func writeError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(400, gin.H{"error": err.Error()})
	case services.IsNotFound(err):
		c.JSON(404, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
