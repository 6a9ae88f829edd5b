package handlers

import (
	"context"
	"errors"
	"net/http"

	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/infrastructure/estoquefacil"
	"ordem_servico/internal/usecase"
	"ordem_servico/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func mapOrderError(err error) *pkg.AppError {
	var verr *form.ValidationError
	var remote *estoquefacil.RemoteError
	switch {
	case errors.As(err, &verr):
		details := make([]pkg.ErrorDetail, 0, len(verr.FieldErrors))
		for _, fe := range verr.FieldErrors {
			details = append(details, pkg.ErrorDetail{Field: fe.Field, Message: fe.Message})
		}
		return pkg.NewDomainError("INVALID_FORM", "Invalid form", err, http.StatusUnprocessableEntity).WithDetails(details...)
	case errors.Is(err, usecase.ErrMissingToken), errors.Is(err, estoquefacil.ErrEmptyToken):
		return errMissingToken
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid service order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidFormMode), errors.Is(err, form.ErrBillIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Delete must be confirmed with confirm=true", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrSubmitInProgress):
		return pkg.NewDomainErrorSimple("SUBMIT_IN_PROGRESS", "Submission already in progress", http.StatusConflict)
	case errors.As(err, &remote):
		if remote.NotFound() {
			return pkg.NewDomainError("REMOTE_NOT_FOUND", "Resource not found on the service order API", err, http.StatusNotFound)
		}
		return pkg.NewDomainError("REMOTE_API_ERROR", "Service order API request failed", err, http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REMOTE_TIMEOUT", "Service order API timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// abortWithError logs err with its mapped code and writes the error body.
func abortWithError(c *gin.Context, tag string, err error, mapper func(error) *pkg.AppError) {
	appErr := mapper(err)
	fields := []zap.Field{zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus), zap.Error(err)}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error(tag, fields...)
	} else {
		zap.L().Info(tag, fields...)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
