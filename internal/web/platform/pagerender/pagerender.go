// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/i18n"
	"github.com/uamlabs/labfront/internal/web/platform/flash"
	"github.com/uamlabs/labfront/internal/web/platform/httpx"
	"github.com/uamlabs/labfront/internal/web/templates"
)

// AppPage describes an authenticated page rendered inside the app shell.
type AppPage struct {
	Title      string
	StatusCode int
	Viewer     templates.Viewer
	Content    templ.Component
}

// WriteAppPage renders an authenticated page: resolves the request
// language, consumes any pending flash notice into a toast, and writes
// the full document.
func WriteAppPage(w http.ResponseWriter, r *http.Request, page AppPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, lang := i18n.ResolveLocalizer(w, r)
	toast := resolveFlashToast(w, r, loc)

	var buf bytes.Buffer
	layout := templates.AppLayout(page.Title, page.Viewer, toast, lang, loc, page.Content)
	if err := layout.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// PublicPage describes an unauthenticated page rendered in the auth layout.
type PublicPage struct {
	Title      string
	StatusCode int
	Content    templ.Component
}

// WritePublicPage renders an unauthenticated page.
func WritePublicPage(w http.ResponseWriter, r *http.Request, page PublicPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, lang := i18n.ResolveLocalizer(w, r)
	toast := resolveFlashToast(w, r, loc)

	var buf bytes.Buffer
	layout := templates.AuthLayout(page.Title, toast, lang, loc, page.Content)
	if err := layout.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// resolveFlashToast consumes the pending flash notice, if any. Verbatim
// notice text wins over a localization key so server-provided messages
// surface unchanged.
func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc templates.Localizer) *templates.Toast {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(notice.Text)
	if message == "" && notice.Key != "" {
		message = strings.TrimSpace(loc.Sprintf(notice.Key))
		if message == "" {
			message = notice.Key
		}
	}
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}
