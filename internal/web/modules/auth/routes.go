package auth

import (
	"net/http"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLoginPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewAccount, h.handleRegisterGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.NewAccount, h.handleRegisterPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.RecoverPassword, h.handleRecoverGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.RecoverPassword, h.handleRecoverPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, h.handleLogout)
	// Unknown paths fall through to the sign-in view.
	mux.HandleFunc(routepath.Root, h.handleCatchAll)
}
