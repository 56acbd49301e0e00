package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/middlewares"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// handleServiceError maps the service error taxonomy onto the HTTP envelope.
// notFound is the entity-specific 404 message; everything unexpected is
// logged and answered with a generic 500 so internals never leak.
func handleServiceError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Error(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrBadCredentials),
		errors.Is(err, services.ErrEmailTaken):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrGoalsNotSet):
		utils.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Error(c, http.StatusNotFound, notFound)
	default:
		log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		utils.Error(c, http.StatusInternalServerError, "Internal server error. Please try again.")
	}
}

// requireUser pulls the authenticated user id; the auth middleware should
// make a miss impossible, but a missing id still answers 401, not 500.
func requireUser(c *gin.Context) (uint, bool) {
	id, ok := middlewares.UserID(c)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	return id, ok
}

// listFilterFromQuery reads the shared days/startDate/endDate query filters.
func listFilterFromQuery(c *gin.Context) services.ListFilter {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	return services.ListFilter{
		Days:      days,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}

// idFromQuery parses the required `id` query parameter for delete endpoints.
func idFromQuery(c *gin.Context, missing string) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, missing)
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, missing)
		return 0, false
	}
	return uint(id), true
}
