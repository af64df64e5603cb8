package ecode

import (
	"net/http"
)

// Business codes returned in API error bodies.
const (
	OK = 0

	RequestErr       = -400
	ParamErr         = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409

	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504

	// Task domain codes.
	TaskValidation  = -1001
	TaskInvalidDate = -1002
)

var (
	messages = map[int]string{
		OK:                 "ok",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		AccessDenied:       "Access denied",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		Deadline:           "Deadline exceeded",
		TaskValidation:     "Task fields are invalid",
		TaskInvalidDate:    "Invalid date format",
	}

	statuses = map[int]int{
		OK:                 http.StatusOK,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusBadRequest,
		AccessDenied:       http.StatusForbidden,
		NothingFound:       http.StatusNotFound,
		MethodNotAllowed:   http.StatusMethodNotAllowed,
		Conflict:           http.StatusConflict,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
		Deadline:           http.StatusGatewayTimeout,
		TaskValidation:     http.StatusBadRequest,
		TaskInvalidDate:    http.StatusBadRequest,
	}
)

// Text returns the message registered for code, or an empty string.
func Text(code int) string {
	return messages[code]
}

// ToHTTPStatus maps a business code to an HTTP status, defaulting to 500.
func ToHTTPStatus(code int) int {
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
