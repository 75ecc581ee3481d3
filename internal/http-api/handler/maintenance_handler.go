package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/internal/http-api/service"
)

type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/backup", h.Backup)
}

// Backup snapshots the database file
func (h *MaintenanceHandler) Backup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if _, err := h.svc.Backup(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create backup"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database backup created successfully"})
}
