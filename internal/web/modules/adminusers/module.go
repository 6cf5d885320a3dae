// Package adminusers provides the administrator account management
// views: listing, editing, and two-step deletion of directory accounts.
package adminusers

import (
	"context"
	"net/http"

	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/module"
	"github.com/uamlabs/labfront/internal/web/platform/modulehandler"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
)

// UserDirectory is the narrow directory surface the module needs.
type UserDirectory interface {
	List(ctx context.Context) ([]users.User, error)
	Update(ctx context.Context, id int, update users.Update) (users.User, error)
	Delete(ctx context.Context, id int) error
}

// Module provides the admin account management routes.
type Module struct {
	directory UserDirectory
	sessions  session.Store
	policy    requestmeta.SchemePolicy
}

// New returns an adminusers module over the given directory client.
func New(directory UserDirectory, sessions session.Store, policy requestmeta.SchemePolicy) Module {
	return Module{directory: directory, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "adminusers" }

// Mount wires the admin account route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(m.sessions, m.policy)
	h := newHandlers(m.directory, base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AppAdminUsers, Handler: mux}, nil
}
