package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/internal/http-api/dto"
	"ebooklib/internal/http-api/service"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-user", h.CreateUser)
	rg.POST("/login", h.Login)
}

// CreateUser mints a new anonymous identity and returns its library code
func (h *LibraryHandler) CreateUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.CreateUser(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreateUserResponse{
		Success:   true,
		UserID:    user.ID,
		LibraryID: user.LibraryID,
		Message:   "User created successfully",
	})
}

// Login resolves a library code and opens a new reading session
func (h *LibraryHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LibraryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Library ID required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.svc.Login(ctx, req.LibraryID)
	if err != nil {
		if err == service.ErrLibraryCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid Library ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:     true,
		UserID:      result.User.ID,
		LibraryID:   result.User.LibraryID,
		SessionID:   result.SessionID,
		AccessCount: result.User.AccessCount,
		Message:     "Login successful",
	})
}
