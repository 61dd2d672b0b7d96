package handler

import (
	"errors"
	"net/http"

	"email-template-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	var upstreamErr *models.UpstreamError
	hasUpstream := errors.As(err, &upstreamErr)

	switch {
	case errors.Is(err, models.ErrMissingCredential):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeMissingAPIKey, Detail: "OpenAI API key is required"}
	case errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeBadRequest, Detail: err.Error()}
	case errors.Is(err, models.ErrUpstreamAuth):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Code: models.ErrCodeInvalidAPIKey, Detail: "Invalid OpenAI API key"}
	case errors.Is(err, models.ErrUpstreamQuota):
		statusCode = http.StatusPaymentRequired
		errResp = models.ErrorResponse{Code: models.ErrCodeQuotaExceeded, Detail: "OpenAI API quota exceeded or billing issue"}
	case errors.Is(err, models.ErrUpstreamGeneration):
		statusCode = http.StatusInternalServerError
		cause := err
		if hasUpstream {
			cause = upstreamErr.Cause
		}
		errResp = models.ErrorResponse{Code: models.ErrCodeGenerationFailed, Detail: "Error generating template: " + cause.Error()}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Detail: "Error: " + err.Error()}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Code: models.ErrCodeBadRequest, Detail: detail})
}
