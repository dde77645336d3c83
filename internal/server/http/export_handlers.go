package httpserver

import (
	"net/http"
	"strings"
)

type exportRequest struct {
	TargetEmail string `json:"targetEmail"`
}

func (s *Server) postExport(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	if !strings.Contains(req.TargetEmail, "@") {
		writeError(w, http.StatusBadRequest, "targetEmail must be a valid email")
		return
	}

	if err := s.exports.RequestExport(r.Context(), uid, req.TargetEmail); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "your export request is queued",
	})
}
