package resp

import (
	"net/http"

	"github.com/ncobase/taskboard/internal/ecode"
)

// BadRequest reports a request that could not be read.
func BadRequest(message string, errs ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// InvalidParams reports fields that failed validation under a business code.
func InvalidParams(code int, message string, errs ...any) *Exception {
	status := ecode.ToHTTPStatus(code)
	if status >= http.StatusInternalServerError {
		status = http.StatusBadRequest
	}
	return newException(status, code, message, errs...)
}

// NotFound reports a missing resource.
func NotFound(message string, errs ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NothingFound, message, errs...)
}

// InternalServer reports an unexpected failure.
func InternalServer(message string, errs ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, errs...)
}
