package errors

import "net/http"

// Коды ошибок расчёта
const (
	CodeMissingSelection = "MISSING_SELECTION"
	CodeSameCity         = "SAME_CITY"
	CodeNoRouteData      = "NO_ROUTE_DATA"
	CodeInvalidVolume    = "INVALID_VOLUME"
	CodeInvalidVehicle   = "INVALID_VEHICLE"
)

var (
	ErrMissingSelection = New(
		CodeMissingSelection,
		"Origin and destination must be selected",
		http.StatusBadRequest,
	)

	ErrSameCity = New(
		CodeSameCity,
		"Origin and destination must differ",
		http.StatusBadRequest,
	)

	ErrNoRouteData = New(
		CodeNoRouteData,
		"No distance data for the selected route",
		http.StatusBadRequest,
	)

	ErrInvalidVolume = New(
		CodeInvalidVolume,
		"Volume must be a positive number",
		http.StatusBadRequest,
	)

	ErrInvalidVehicle = New(
		CodeInvalidVehicle,
		"Unknown vehicle class",
		http.StatusBadRequest,
	)

	ErrQuoteNotFound = New(
		"QUOTE_NOT_FOUND",
		"Quote not found",
		http.StatusNotFound,
	)

	ErrInvalidQuoteID = New(
		"INVALID_QUOTE_ID",
		"Invalid quote ID",
		http.StatusBadRequest,
	)

	ErrUnknownCity = New(
		"UNKNOWN_CITY",
		"City is not present in the tariff",
		http.StatusNotFound,
	)

	ErrStatsUnavailable = New(
		"STATS_UNAVAILABLE",
		"Quote journal is disabled",
		http.StatusServiceUnavailable,
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

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
