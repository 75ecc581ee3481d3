package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/internal/http-api/dto"
	"ebooklib/internal/http-api/service"
)

type SessionHandler struct {
	svc service.SessionService
}

func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/update-session", h.UpdateSession)
	rg.POST("/end-session", h.EndSession)
}

// UpdateSession overwrites the session's pages-read snapshot
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session ID required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.UpdatePages(ctx, req.SessionID, req.PagesRead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session updated"})
}

// EndSession stamps the session's end time
func (h *SessionHandler) EndSession(c *gin.Context) {
	var req dto.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session ID required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.End(ctx, req.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session ended"})
}
