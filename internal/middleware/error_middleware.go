package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found").
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrCatalogNotLoaded):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeCatalogNotLoaded, "No catalog has been loaded").
			WithSeverity(dto.ErrorSeverityWarning)
	case apperrors.IsValidation(err):
		return http.StatusUnprocessableEntity, rejection(err, custom, hasCustom)
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeSourceUnavailable, "Course file unavailable").
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied").
			WithDetails(err.Error())
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// rejection describes a rejected course batch, keeping the line-level details.
func rejection(err error, custom *apperrors.CustomError, hasCustom bool) *dto.ErrorDetail {
	code := dto.ErrorCodeMalformedRecord
	switch {
	case hasCustom && custom.Code != "":
		code = dto.ErrorCode(custom.Code)
	case errors.Is(err, apperrors.ErrDanglingPrerequisite):
		code = dto.ErrorCodeDanglingPrerequisite
	}

	detail := dto.NewErrorDetail(code, "Catalog file rejected")
	if hasCustom && custom.Details != nil {
		details := make(map[string]interface{}, len(custom.Details)+1)
		for k, v := range custom.Details {
			details[k] = v
		}
		details["reason"] = err.Error()
		return detail.WithDetails(details)
	}
	return detail.WithDetails(err.Error())
}
