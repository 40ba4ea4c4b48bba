package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillbox/quillbox-server/internal/admins"
	"github.com/quillbox/quillbox-server/internal/config"
	"github.com/quillbox/quillbox-server/internal/tokens"
	"github.com/quillbox/quillbox-server/pkg/logger"
	"github.com/quillbox/quillbox-server/pkg/middleware"
)

// AdminHandler serves login and profile for the administrator account.
type AdminHandler struct {
	cfg      *config.Config
	adminSvc *admins.Service
}

func NewAdminHandler(cfg *config.Config, svc *admins.Service) *AdminHandler {
	return &AdminHandler{cfg: cfg, adminSvc: svc}
}

// Register mounts the admin routes. Login is public; profile requires a
// bearer token.
func (h *AdminHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.GET("/profile", requireAuth, h.Profile)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	a, err := h.adminSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admins.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		logger.Errorf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	token, err := tokens.GenerateAccessToken(h.cfg, a, h.cfg.JWT.TokenTTL)
	if err != nil {
		logger.Errorf("login: sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin":   gin.H{"id": a.ID.Hex(), "username": a.Username},
	})
}

func (h *AdminHandler) Profile(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
		return
	}

	a, err := h.adminSvc.GetProfile(c.Request.Context(), ident.ID)
	if err != nil {
		if errors.Is(err, admins.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
			return
		}
		logger.Errorf("profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, a)
}
