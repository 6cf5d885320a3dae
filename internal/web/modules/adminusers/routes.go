package adminusers

import (
	"net/http"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppAdminUsers, h.ProtectAdmin(h.handleList))
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminUserEditPattern, h.ProtectAdmin(h.handleEditGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminUserSavePattern, h.ProtectAdmin(h.handleSave))
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminUserDeletePattern, h.ProtectAdmin(h.handleDeleteGet))
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminUserDeletePattern, h.ProtectAdmin(h.handleDeletePost))
}
