package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/service"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

// respondError maps domain and tenancy errors to HTTP responses. Tenancy
// violations carry machine-readable codes so clients can distinguish a
// missing city from a cross-tenant rejection.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tenancy.ErrCityNotAvailable):
		c.JSON(http.StatusBadRequest, dto.Error{Code: tenancy.CodeCityNotAvailable, Error: err.Error()})
	case errors.Is(err, tenancy.ErrExplicitCityRequired):
		c.JSON(http.StatusBadRequest, dto.Error{Code: tenancy.CodeExplicitCityRequired, Error: err.Error()})
	case errors.Is(err, tenancy.ErrCityRequired):
		c.JSON(http.StatusBadRequest, dto.Error{Code: tenancy.CodeCityRequired, Error: err.Error()})
	case errors.Is(err, tenancy.ErrCrossTenantWrite):
		c.JSON(http.StatusForbidden, dto.Error{Code: tenancy.CodeCrossTenantWrite, Error: err.Error()})
	case errors.Is(err, tenancy.ErrBairroCityMismatch):
		c.JSON(http.StatusUnprocessableEntity, dto.Error{Code: tenancy.CodeBairroCityMismatch, Error: err.Error()})
	case errors.Is(err, service.ErrUserRestricted):
		c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrRestrictionNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidReportStatus),
		errors.Is(err, service.ErrInvalidRestrictionType):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
