package handler

import "net/http"

// credentialsRequest is the shared body shape for /register and /login.
type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleRegister handles POST /register. Not gated: this is how accounts
// come into existence.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrs := s.validate.Validate(req); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	if _, err := s.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		respondError(w, r, err, "Username")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered")
}

// handleLogin handles POST /login. Not gated. On success the body carries
// the access token the client presents on every protected request.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrs := s.validate.Validate(req); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err, "User")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}
