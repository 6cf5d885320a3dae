// Package auth provides the public authentication views: sign in,
// account creation, password recovery, and sign out.
package auth

import (
	"context"
	"net/http"

	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/module"
	"github.com/uamlabs/labfront/internal/web/platform/publichandler"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
)

// UserDirectory is the narrow directory surface the auth module needs.
type UserDirectory interface {
	Login(ctx context.Context, email, password string) (users.User, error)
	Register(ctx context.Context, reg users.Registration) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// Module provides the public authentication routes.
type Module struct {
	directory UserDirectory
	sessions  session.Store
	policy    requestmeta.SchemePolicy
}

// New returns an auth module over the given directory client.
func New(directory UserDirectory, sessions session.Store, policy requestmeta.SchemePolicy) Module {
	return Module{directory: directory, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Mount wires the public authentication route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := publichandler.NewBase(m.policy)
	h := newHandlers(m.directory, m.sessions, base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
