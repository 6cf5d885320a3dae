package profile

import (
	"net/http"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfile, h.Protect(h.handleProfileGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfile, h.Protect(h.handleProfilePost))
}
