package mock

import (
	"net/http"
)

// Resource is the data of the default protected resource response.
type Resource struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Subject string `json:"subject"`
}

// defaultResourceHandler simulates any authenticated /admin, /items, /orders
// or /deliveries endpoint by echoing the request.
func (s *Service) defaultResourceHandler(w http.ResponseWriter, r *http.Request) {
	subject, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": Resource{Method: r.Method, Path: r.URL.Path, Subject: subject},
	})
}
