// Package modulehandler provides a composable base for protected web
// module handlers.
//
// Protected modules (those mounted under /app/) share the same guard,
// localization, rendering, and notice plumbing. This package extracts
// that scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/i18n"
	"github.com/uamlabs/labfront/internal/web/platform/flash"
	"github.com/uamlabs/labfront/internal/web/platform/httpx"
	"github.com/uamlabs/labfront/internal/web/platform/pagerender"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/platform/weberror"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
	"github.com/uamlabs/labfront/internal/web/templates"
)

// ProtectedHandler is a handler that runs with a resolved session.
type ProtectedHandler func(http.ResponseWriter, *http.Request, session.User)

// Base carries the shared request-scoped plumbing used by protected
// module handlers.
type Base struct {
	sessions session.Store
	policy   requestmeta.SchemePolicy
}

// NewBase builds a handler base over the given session store.
func NewBase(sessions session.Store, policy requestmeta.SchemePolicy) Base {
	return Base{sessions: sessions, policy: policy}
}

// Sessions exposes the session store for handlers that rewrite the
// snapshot after a profile save.
func (b Base) Sessions() session.Store { return b.sessions }

// Protect wraps a handler behind the session guard. A request without a
// valid session is redirected to the sign-in view, silently.
func (b Base) Protect(next ProtectedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := b.sessions.Load(r)
		if !ok {
			httpx.WriteRedirect(w, r, routepath.Login)
			return
		}
		next(w, r, user)
	}
}

// ProtectAdmin wraps a handler behind the admin guard. A signed-in
// non-admin is redirected to the home view, silently.
func (b Base) ProtectAdmin(next ProtectedHandler) http.HandlerFunc {
	return b.Protect(func(w http.ResponseWriter, r *http.Request, user session.User) {
		if !user.Admin {
			httpx.WriteRedirect(w, r, routepath.AppLabs)
			return
		}
		next(w, r, user)
	})
}

// Viewer derives the app chrome state from a session snapshot.
func Viewer(user session.User) templates.Viewer {
	return templates.Viewer{Name: user.Name, Admin: user.Admin}
}

// PageLocalizer resolves a localizer and language code from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, string) {
	return i18n.ResolveLocalizer(w, r)
}

// Flash stores a one-time notice for the next page render.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	flash.WriteWithPolicy(w, r, notice, b.policy)
}

// WritePage renders a full app page for the signed-in user.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, user session.User, title string, statusCode int, content templ.Component) {
	page := pagerender.AppPage{
		Title:      title,
		StatusCode: statusCode,
		Viewer:     Viewer(user),
		Content:    content,
	}
	if err := pagerender.WriteAppPage(w, r, page); err != nil {
		b.WriteError(w, r, user, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, user session.User, err error) {
	weberror.WriteModuleError(w, r, Viewer(user), err)
}

// WriteNotFound renders a 404 page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request, user session.User) {
	weberror.WriteAppError(w, r, Viewer(user), http.StatusNotFound)
}
