// Package httpserver exposes the noteshare JSON API.
package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"noteshare/internal/service"
	"noteshare/internal/storage"
	"noteshare/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth    service.AuthService
	notes   service.NoteService
	collabs service.CollabService
	exports service.ExportService
	uploads *storage.Local
	codec   *token.Manager
	log     *zap.Logger
}

// New constructs the HTTP server with injected services.
func New(
	auth service.AuthService,
	notes service.NoteService,
	collabs service.CollabService,
	exports service.ExportService,
	uploads *storage.Local,
	codec *token.Manager,
	log *zap.Logger,
) *Server {
	return &Server{
		auth:    auth,
		notes:   notes,
		collabs: collabs,
		exports: exports,
		uploads: uploads,
		codec:   codec,
		log:     log,
	}
}

// Handler returns the routed handler with logging and panic recovery applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", s.postUser)
	mux.HandleFunc("GET /users/{id}", s.getUser)

	mux.HandleFunc("POST /authentications", s.postAuthentication)
	mux.HandleFunc("PUT /authentications", s.putAuthentication)
	mux.HandleFunc("DELETE /authentications", s.deleteAuthentication)

	mux.HandleFunc("POST /notes", s.authenticate(s.postNote))
	mux.HandleFunc("GET /notes", s.authenticate(s.getNotes))
	mux.HandleFunc("GET /notes/{id}", s.authenticate(s.getNote))
	mux.HandleFunc("PUT /notes/{id}", s.authenticate(s.putNote))
	mux.HandleFunc("DELETE /notes/{id}", s.authenticate(s.deleteNote))

	mux.HandleFunc("POST /collaborations", s.authenticate(s.postCollaboration))
	mux.HandleFunc("DELETE /collaborations", s.authenticate(s.deleteCollaboration))

	mux.HandleFunc("POST /export/notes", s.authenticate(s.postExport))

	mux.HandleFunc("POST /upload/images", s.authenticate(s.postUpload))
	mux.Handle("GET /upload/images/", http.StripPrefix("/upload/images/",
		http.FileServer(http.Dir(s.uploads.Dir()))))

	var h http.Handler = mux
	h = Logging(s.log)(h)
	h = Recover(s.log)(h)
	return h
}
