package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type ProgressController struct {
	svc *services.ProgressService
	log *zap.Logger
}

func NewProgressController(svc *services.ProgressService, log *zap.Logger) *ProgressController {
	return &ProgressController{svc: svc, log: log}
}

func (h *ProgressController) Dashboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	dashboard, err := h.svc.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, dashboard, "")
}

func (h *ProgressController) Report(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	report, err := h.svc.Report(c.Request.Context(), userID, time.Now())
	if err != nil {
		handleServiceError(c, h.log, err, "User not found")
		return
	}
	utils.Success(c, http.StatusOK, report, "")
}
