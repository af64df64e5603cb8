// Package resp writes JSON API responses in a single envelope format.
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/taskboard/internal/ecode"
)

// Exception is the error body returned by the API. The HTTP status travels
// on the response line only.
type Exception struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"` // per-field validation messages
}

func newException(status, code int, message string, errs ...any) *Exception {
	e := &Exception{Status: status, Code: code, Message: message}
	if len(errs) > 0 {
		e.Errors = errs[0]
	}
	return e
}

// Success writes data with 200.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes a success body with the given status. Data is
// encoded as is; a lone string becomes {"message": s}; no data yields
// {"message": "ok"}. 204 writes no body.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return
	}

	var body any = map[string]string{"message": "ok"}
	if len(data) > 0 && data[0] != nil {
		if msg, ok := data[0].(string); ok {
			body = map[string]string{"message": msg}
		} else {
			body = data[0]
		}
	}
	writeJSON(w, statusCode, body)
}

// Fail writes e. A nil exception is reported as an internal error.
func Fail(w http.ResponseWriter, e *Exception) {
	if e == nil {
		e = InternalServer(ecode.Text(ecode.ServerErr))
	}

	status := e.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	out := *e
	if out.Code == 0 {
		out.Code = ecode.RequestErr
	}
	if out.Message == "" {
		out.Message = ecode.Text(out.Code)
	}
	writeJSON(w, status, &out)
}

// writeJSON sets the content type before the status line is sent.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
