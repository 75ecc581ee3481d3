package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/internal/http-api/dto"
	"ebooklib/internal/http-api/service"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user-stats/:user_id", h.UserStats)
	rg.GET("/admin/stats", h.AdminStats)
}

// UserStats returns the reader's profile: card info, name history, session aggregates
func (h *StatsHandler) UserStats(c *gin.Context) {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.svc.UserStats(ctx, userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromUserStats(stats))
}

// AdminStats returns global totals plus a per-user rollup
func (h *StatsHandler) AdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.svc.AdminStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromAdminStats(stats))
}
