package tenancy

import "errors"

var (
	// ErrCityNotAvailable means no active city matches host, header, or the
	// configured default. The request cannot be served.
	ErrCityNotAvailable = errors.New("service not available for this locality")

	// ErrExplicitCityRequired means the route demands an explicitly resolved
	// city but the request only matched the fallback default.
	ErrExplicitCityRequired = errors.New("explicit city required")

	// ErrCityRequired means a tenant-owned record was about to be created
	// without a city id and none could be stamped from the tenant context.
	ErrCityRequired = errors.New("city id is required for tenant-owned records")

	// ErrCrossTenantWrite means a save would associate a record with a city
	// other than the one bound to the request.
	ErrCrossTenantWrite = errors.New("record city does not match the active city")

	// ErrBairroCityMismatch means the referenced bairro belongs to a
	// different city than the record itself.
	ErrBairroCityMismatch = errors.New("bairro does not belong to the record's city")
)

// Machine-readable error codes surfaced to API clients.
const (
	CodeCityNotAvailable     = "CITY_NOT_AVAILABLE"
	CodeExplicitCityRequired = "EXPLICIT_CITY_REQUIRED"
	CodeCityRequired         = "CITY_REQUIRED"
	CodeCrossTenantWrite     = "CROSS_TENANT_WRITE"
	CodeBairroCityMismatch   = "BAIRRO_CITY_MISMATCH"
)
