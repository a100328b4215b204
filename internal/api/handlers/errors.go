package handlers

import (
	"net/http"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "something went wrong, please try again later"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a plain confirmation response
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}

// respondError maps a service error onto its HTTP status and writes it.
// Storage and unexpected errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsStorage(err):
		logger.WithContext(c.Request.Context()).WithError(err).Error("storage failure while handling request")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: genericErrorMessage})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("unexpected error while handling request")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: genericErrorMessage})
	}
}

// bindJSON binds the request body and writes a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
