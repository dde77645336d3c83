package httpserver

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/model"
)

type notePayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(n model.Note) noteResponse {
	return noteResponse{
		ID:        n.ID.String(),
		Owner:     n.Owner.String(),
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// mustUserID reads the authenticated identity placed by the middleware.
func mustUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
	}
	return uid, ok
}

func noteIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad note id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) postNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req notePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	id, err := s.notes.Create(r.Context(), uid, req.Title, req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"noteId": id.String()})
}

func (s *Server) getNotes(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	notes, err := s.notes.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": out})
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	noteID, ok := noteIDFromPath(w, r)
	if !ok {
		return
	}
	n, err := s.notes.Get(r.Context(), uid, noteID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"note": toNoteResponse(*n)})
}

func (s *Server) putNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	noteID, ok := noteIDFromPath(w, r)
	if !ok {
		return
	}
	var req notePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := s.notes.Update(r.Context(), uid, noteID, req.Title, req.Body); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	noteID, ok := noteIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.notes.Delete(r.Context(), uid, noteID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
