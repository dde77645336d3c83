package httpserver

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
)

type collaborationRequest struct {
	NoteID string `json:"noteId"`
	UserID string `json:"userId"`
}

func (req collaborationRequest) ids() (noteID, userID uuid.UUID, err error) {
	noteID, err = uuid.FromString(req.NoteID)
	if err != nil {
		return
	}
	userID, err = uuid.FromString(req.UserID)
	return
}

func (s *Server) postCollaboration(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req collaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	noteID, userID, err := req.ids()
	if err != nil {
		writeError(w, http.StatusBadRequest, "noteId and userId must be valid ids")
		return
	}

	if err := s.collabs.Add(r.Context(), uid, noteID, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (s *Server) deleteCollaboration(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req collaborationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	noteID, userID, err := req.ids()
	if err != nil {
		writeError(w, http.StatusBadRequest, "noteId and userId must be valid ids")
		return
	}

	if err := s.collabs.Remove(r.Context(), uid, noteID, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
