// Package profile provides the self-service account view. The form is
// seeded from the session snapshot, not a directory fetch: the snapshot
// is the browser's source of truth for who is signed in.
package profile

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

// UserDirectory is the narrow directory surface the profile module needs.
type UserDirectory interface {
	Update(ctx context.Context, id int, update users.Update) (users.User, error)
}

// Module provides the self-profile routes.
type Module struct {
	directory UserDirectory
	sessions  session.Store
	policy    requestmeta.SchemePolicy
}

// New returns a profile module over the given directory client.
func New(directory UserDirectory, sessions session.Store, policy requestmeta.SchemePolicy) Module {
	return Module{directory: directory, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires the self-profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(m.sessions, m.policy)
	h := newHandlers(m.directory, base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AppProfile, Handler: mux}, nil
}
