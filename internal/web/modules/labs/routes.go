package labs

import (
	"net/http"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppLabs, h.Protect(h.handleList))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppLabs, h.ProtectAdmin(h.handleCreate))
	mux.HandleFunc(http.MethodGet+" "+routepath.AppLabNew, h.ProtectAdmin(h.handleNewGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.LabEditPattern, h.ProtectAdmin(h.handleEditGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.LabSavePattern, h.ProtectAdmin(h.handleSave))
	mux.HandleFunc(http.MethodGet+" "+routepath.LabDeletePattern, h.ProtectAdmin(h.handleDeleteGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.LabDeletePattern, h.ProtectAdmin(h.handleDeletePost))
}
