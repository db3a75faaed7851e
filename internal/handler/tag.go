package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// createTagRequest is the body for POST /tags.
type createTagRequest struct {
	Name string `json:"name" validate:"required"`
}

// handleCreateTag handles POST /tags.
func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrs := s.validate.Validate(req); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	created, err := s.tags.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err, "Tag")
		return
	}

	writeJSON(w, http.StatusCreated, tagToResponse(created))
}

// handleListTags handles GET /tags.
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Tag")
		return
	}

	writeJSON(w, http.StatusOK, tagsToResponse(tags))
}

// handleGetTag handles GET /tag/{name}.
func (s *Server) handleGetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := s.tags.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, r, err, "Tag")
		return
	}

	writeJSON(w, http.StatusOK, tagToResponse(tag))
}

// handleDeleteTag handles DELETE /tag/{name}. Deleting an absent tag is a
// 404, matching GET; links to products cascade away with the tag.
func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.tags.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondError(w, r, err, "Tag")
		return
	}

	writeMessage(w, http.StatusOK, "Tag deleted")
}
