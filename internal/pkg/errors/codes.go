package errors

import "net/http"

const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeMalformedGeometry = "MALFORMED_GEOMETRY"
	CodeDuplicateKey      = "DUPLICATE_KEY"
	CodeMalformedRaster   = "MALFORMED_RASTER"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidArgument = New(
		CodeInvalidArgument,
		"Invalid argument",
		http.StatusBadRequest,
	)

	ErrMalformedGeometry = New(
		CodeMalformedGeometry,
		"Malformed geometry",
		http.StatusUnprocessableEntity,
	)

	ErrDuplicateKey = New(
		CodeDuplicateKey,
		"Duplicate country code",
		http.StatusConflict,
	)

	ErrMalformedRaster = New(
		CodeMalformedRaster,
		"Malformed raster grid",
		http.StatusUnprocessableEntity,
	)

	ErrCountryNotFound = New(
		"COUNTRY_NOT_FOUND",
		"Country not found",
		http.StatusNotFound,
	)

	ErrRasterNotLoaded = New(
		"RASTER_NOT_LOADED",
		"Population raster is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrSessionClosed = New(
		"SESSION_CLOSED",
		"Globe session is closed",
		http.StatusGone,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
