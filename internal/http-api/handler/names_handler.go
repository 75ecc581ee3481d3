package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/internal/http-api/dto"
	"ebooklib/internal/http-api/service"
)

type NamesHandler struct {
	svc service.NamesService
}

func NewNamesHandler(svc service.NamesService) *NamesHandler {
	return &NamesHandler{svc: svc}
}

func (h *NamesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/save-names", h.SaveNames)
}

// SaveNames records one use of a name pair for a user
func (h *NamesHandler) SaveNames(c *gin.Context) {
	var req dto.SaveNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User ID and both names required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.SavePair(ctx, req.UserID, req.Female, req.Male)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Names saved successfully"})
	case service.ErrNamesRequired, service.ErrNameTooLong, service.ErrNameInvalidChars:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case service.ErrUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid user ID"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
