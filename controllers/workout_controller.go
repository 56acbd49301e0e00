package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type WorkoutController struct {
	svc *services.WorkoutService
	log *zap.Logger
}

func NewWorkoutController(svc *services.WorkoutService, log *zap.Logger) *WorkoutController {
	return &WorkoutController{svc: svc, log: log}
}

func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	workouts, err := h.svc.List(c.Request.Context(), userID, listFilterFromQuery(c))
	if err != nil {
		handleServiceError(c, h.log, err, "Workout not found")
		return
	}

	out := make([]models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, workouts[i].Response())
	}
	utils.Success(c, http.StatusOK, out, "")
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in services.CreateWorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		handleServiceError(c, h.log, err, "Workout not found")
		return
	}
	utils.Success(c, http.StatusCreated, workout.Response(), "Workout added successfully")
}

type updateWorkoutRequest struct {
	ID        *uint   `json:"id"`
	Type      *string `json:"type"`
	Name      *string `json:"name"`
	Duration  *int    `json:"duration"`
	Intensity *string `json:"intensity"`
	Notes     *string `json:"notes"`
}

func (h *WorkoutController) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == nil {
		utils.Error(c, http.StatusBadRequest, "Workout ID is required")
		return
	}

	workout, err := h.svc.Update(c.Request.Context(), userID, *req.ID, services.UpdateWorkoutInput{
		Type:      req.Type,
		Name:      req.Name,
		Duration:  req.Duration,
		Intensity: req.Intensity,
		Notes:     req.Notes,
	})
	if err != nil {
		handleServiceError(c, h.log, err, "Workout not found")
		return
	}
	utils.Success(c, http.StatusOK, workout.Response(), "Workout updated successfully")
}

func (h *WorkoutController) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, ok := idFromQuery(c, "Workout ID is required")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, h.log, err, "Workout not found")
		return
	}
	utils.Success(c, http.StatusOK, nil, "Workout deleted successfully")
}
