package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"noteshare/internal/errs"
)

// envelope is the response shape used by every endpoint:
// {"status":"success","data":...} or {"status":"fail","message":"..."}.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Status: "fail", Message: msg})
}

// writeServiceError maps sentinel error kinds onto protocol responses.
// Anything unrecognized is an internal fault and leaks no detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, "wrong username or password")
	case errors.Is(err, errs.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid token, please re-authenticate")
	case errors.Is(err, errs.ErrRefreshNotFound):
		writeError(w, http.StatusUnauthorized, "session expired, please log in again")
	case errors.Is(err, errs.ErrForbidden):
		writeError(w, http.StatusForbidden, "you have no access to this resource")
	case errors.Is(err, errs.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "already exists")
	case errors.Is(err, errs.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "too many attempts, try again later")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses a request body into dst, limiting its size.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
