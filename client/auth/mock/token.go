package mock

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rewear/admin/schema"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func (s *Service) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var request schema.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	acc, ok := s.users[request.Email]
	if !ok || acc.password != request.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	access, refresh, err := s.IssueTokens(request.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	user := acc.user
	writeJSON(w, http.StatusOK, schema.Envelope[schema.LoginResult]{Data: schema.LoginResult{
		User:         &user,
		AccessToken:  access,
		RefreshToken: refresh,
	}})
}

// defaultRefreshHandler rotates the pair; a refresh token redeems once.
func (s *Service) defaultRefreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.RefreshDelay > 0 {
		time.Sleep(s.RefreshDelay)
	}
	var request schema.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if s.refreshFailing() {
		writeError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	email, ok := s.refreshTokens.Take(request.RefreshToken)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	access, refresh, err := s.IssueTokens(email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, schema.Envelope[schema.TokenPair]{Data: schema.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}})
}

func (s *Service) defaultMeHandler(w http.ResponseWriter, r *http.Request) {
	email, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}
	acc, ok := s.users[email]
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, schema.Envelope[schema.User]{Data: acc.user})
}

func (s *Service) defaultLogoutHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
