package handlers

import (
	"errors"
	"net/http"

	"luxadmin/internal/domain"
	"luxadmin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Rejected state
// transitions and charge failures carry machine-readable codes so the admin
// UI can keep the form populated and tell the operator exactly why.
func RespondDomainError(c *gin.Context, err error) {
	var te domain.TransitionError
	var ce domain.ChargeError
	switch {
	case errors.As(err, &te):
		respondError(c, http.StatusConflict, te.Reason, te.Error(), gin.H{
			"from": te.From,
			"to":   te.To,
		})
	case errors.As(err, &ce):
		code := "payment_failed"
		if ce.RequiresAction {
			code = "requires_action"
		}
		respondError(c, http.StatusPaymentRequired, code, ce.Error(), gin.H{
			"gateway_status": ce.Status,
		})
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
