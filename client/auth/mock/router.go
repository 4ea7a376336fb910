package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock API endpoints.
type Handler struct {
	Server *Service
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := func(custom, fallback func(http.ResponseWriter, *http.Request)) {
		if custom != nil {
			custom(w, r)
			return
		}
		fallback(w, r)
	}
	switch r.URL.Path {
	case "/auth/login":
		route(h.Server.LoginHandler, h.Server.defaultLoginHandler)
	case "/auth/refresh-token":
		h.Server.refreshCalls.Add(1)
		route(h.Server.RefreshHandler, h.Server.defaultRefreshHandler)
	case "/auth/me":
		route(h.Server.MeHandler, h.Server.defaultMeHandler)
	case "/auth/logout":
		h.Server.logoutCalls.Add(1)
		route(h.Server.LogoutHandler, h.Server.defaultLogoutHandler)
	default:
		route(h.Server.ResourceHandler, h.Server.defaultResourceHandler)
	}
}
