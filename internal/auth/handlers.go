package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/internal/common/middleware"
)

// Handler exposes the auth endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates the auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type signupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account
// POST /api/v1/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("email and password are required"))
		return
	}

	user, token, err := h.service.Signup(req.Email, req.Password, req.DisplayName)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login authenticates an account
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("email and password are required"))
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the authenticated account
// GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetUser(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
