// Package publichandler provides a composable base for public web
// module handlers.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/i18n"
	"github.com/uamlabs/labfront/internal/web/platform/flash"
	"github.com/uamlabs/labfront/internal/web/platform/pagerender"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/templates"
)

// Base carries the shared plumbing used by public page handlers.
type Base struct {
	policy requestmeta.SchemePolicy
}

// NewBase builds a public handler base.
func NewBase(policy requestmeta.SchemePolicy) Base {
	return Base{policy: policy}
}

// PageLocalizer resolves a localizer and language code from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, string) {
	return i18n.ResolveLocalizer(w, r)
}

// Flash stores a one-time notice for the next page render.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	flash.WriteWithPolicy(w, r, notice, b.policy)
}

// WritePage renders a public page in the auth layout.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, content templ.Component) {
	page := pagerender.PublicPage{
		Title:      title,
		StatusCode: statusCode,
		Content:    content,
	}
	if err := pagerender.WritePublicPage(w, r, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
