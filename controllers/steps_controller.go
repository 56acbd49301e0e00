package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type StepsController struct {
	svc *services.StepsService
	log *zap.Logger
}

func NewStepsController(svc *services.StepsService, log *zap.Logger) *StepsController {
	return &StepsController{svc: svc, log: log}
}

func (h *StepsController) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	entries, err := h.svc.List(c.Request.Context(), userID, listFilterFromQuery(c))
	if err != nil {
		handleServiceError(c, h.log, err, "Steps entry not found")
		return
	}

	out := make([]models.StepsResponse, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].Response())
	}
	utils.Success(c, http.StatusOK, out, "")
}

func (h *StepsController) Upsert(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in services.UpsertStepsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, created, err := h.svc.Upsert(c.Request.Context(), userID, in)
	if err != nil {
		handleServiceError(c, h.log, err, "Steps entry not found")
		return
	}

	if created {
		utils.Success(c, http.StatusCreated, entry.Response(), "Steps added successfully")
		return
	}
	utils.Success(c, http.StatusOK, entry.Response(), "Steps updated successfully")
}

type updateStepsRequest struct {
	ID       *uint `json:"id"`
	Steps    *int  `json:"steps"`
	Duration *int  `json:"duration"`
}

func (h *StepsController) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == nil {
		utils.Error(c, http.StatusBadRequest, "Steps entry ID is required")
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), userID, *req.ID, services.UpdateStepsInput{
		Steps:    req.Steps,
		Duration: req.Duration,
	})
	if err != nil {
		handleServiceError(c, h.log, err, "Steps entry not found")
		return
	}
	utils.Success(c, http.StatusOK, entry.Response(), "Steps updated successfully")
}

func (h *StepsController) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	id, ok := idFromQuery(c, "Steps entry ID is required")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, h.log, err, "Steps entry not found")
		return
	}
	utils.Success(c, http.StatusOK, nil, "Steps entry deleted successfully")
}
