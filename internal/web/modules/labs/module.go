// Package labs provides the home view of the front-end: the laboratory
// listing, scoped by viewer role, plus the administrator management
// flows (create, edit, delete).
package labs

import (
	"context"
	"net/http"

	"github.com/uamlabs/labfront/internal/directory/labs"
	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/module"
	"github.com/uamlabs/labfront/internal/web/platform/modulehandler"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
)

// LabDirectory is the narrow lab directory surface the module needs.
type LabDirectory interface {
	List(ctx context.Context) ([]labs.Lab, error)
	Create(ctx context.Context, lab labs.Lab) (labs.Lab, error)
	Update(ctx context.Context, id int, lab labs.Lab) (labs.Lab, error)
	Delete(ctx context.Context, id int) error
}

// UserDirectory resolves owner names for the listing and the assignment
// dropdown.
type UserDirectory interface {
	List(ctx context.Context) ([]users.User, error)
}

// Module provides the laboratory routes.
type Module struct {
	labs     LabDirectory
	users    UserDirectory
	sessions session.Store
	policy   requestmeta.SchemePolicy
}

// New returns a labs module over the given directory clients.
func New(labDirectory LabDirectory, userDirectory UserDirectory, sessions session.Store, policy requestmeta.SchemePolicy) Module {
	return Module{labs: labDirectory, users: userDirectory, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "labs" }

// Mount wires the laboratory route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := modulehandler.NewBase(m.sessions, m.policy)
	h := newHandlers(m.labs, m.users, base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AppLabs, Handler: mux}, nil
}
