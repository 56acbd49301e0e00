package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type UserController struct {
	svc *services.UserService
	log *zap.Logger
}

func NewUserController(svc *services.UserService, log *zap.Logger) *UserController {
	return &UserController{svc: svc, log: log}
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.svc.Profile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, profile, "")
}

func (h *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), userID, in)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

func (h *UserController) GetGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	goals, err := h.svc.Goals(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, goals, "")
}

func (h *UserController) SetGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in services.GoalsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	goals, err := h.svc.SetGoals(c.Request.Context(), userID, in)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusCreated, goals, "Goals set successfully")
}

func (h *UserController) UpdateGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in services.GoalsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	goals, err := h.svc.UpdateGoals(c.Request.Context(), userID, in)
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, goals, "Goals updated successfully")
}
