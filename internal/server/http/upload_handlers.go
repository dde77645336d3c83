package httpserver

import (
	"net/http"
)

const maxUploadBytes = 512 << 10 // 512 KB

func (s *Server) postUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large or malformed form")
		return
	}
	file, header, err := r.FormFile("data")
	if err != nil {
		writeError(w, http.StatusBadRequest, "data file field is required")
		return
	}
	defer file.Close()

	ct := header.Header.Get("Content-Type")
	if ct != "image/png" && ct != "image/jpeg" && ct != "image/gif" {
		writeError(w, http.StatusBadRequest, "only png, jpeg or gif images are accepted")
		return
	}

	name, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"fileLocation": "/upload/images/" + name,
	})
}
