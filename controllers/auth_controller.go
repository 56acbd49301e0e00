package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/middlewares"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// authCookieMaxAge matches the 7-day token lifetime.
const authCookieMaxAge = 7 * 24 * 60 * 60

type AuthController struct {
	svc          *services.AuthService
	log          *zap.Logger
	secureCookie bool
}

func NewAuthController(svc *services.AuthService, log *zap.Logger, secureCookie bool) *AuthController {
	return &AuthController{svc: svc, log: log, secureCookie: secureCookie}
}

func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}

	h.setAuthCookie(c, token)
	utils.Success(c, http.StatusCreated, gin.H{
		"user":  user.Response(),
		"token": token,
	}, "Account created successfully")
}

func (h *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}

	h.setAuthCookie(c, token)
	utils.Success(c, http.StatusOK, gin.H{
		"user":  user.Response(),
		"token": token,
	}, "Login successful")
}

func (h *AuthController) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AuthCookieName, token, authCookieMaxAge, "/", "", h.secureCookie, true)
}
