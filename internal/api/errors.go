package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/middleware"
	"github.com/pageza/mealprep/backend/internal/service"
)

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Error: message})
}

// respondError maps service errors to status codes. Unknown errors are logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var dateErr *daterange.InvalidDateInputError
	switch {
	case errors.As(err, &dateErr):
		abortWithError(c, http.StatusBadRequest, dateErr.Error())
	case errors.Is(err, service.ErrInvalidMeal),
		errors.Is(err, service.ErrDuplicateIngredient),
		errors.Is(err, service.ErrUnsupportedImage):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrImageTooLarge):
		abortWithError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrStorageUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, service.ErrStorageUnavailable.Error())
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

// currentUser reads the principal set by the auth middleware.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "user not authenticated")
	}
	return userID, ok
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		abortWithError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
