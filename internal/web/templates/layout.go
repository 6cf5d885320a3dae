// Package templates renders the HTML surface of the web front-end.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// ToastVisibleMillis is how long a toast stays on screen before the
// page script removes it.
const ToastVisibleMillis = 2000

// Viewer carries the chrome data for authenticated app pages.
type Viewer struct {
	Name  string
	Admin bool
}

// Toast is a one-time notice rendered at the top of the next page.
type Toast struct {
	Kind    string
	Message string
}

func esc(s string) string { return templ.EscapeString(s) }

// AppLayout renders an authenticated page inside the app shell: navbar,
// optional toast, then the page content.
func AppLayout(title string, viewer Viewer, toast *Toast, lang string, loc Localizer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeDocumentOpen(w, title, lang, loc); err != nil {
			return err
		}
		if err := writeNavbar(w, viewer, loc); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="page">`); err != nil {
			return err
		}
		if err := writeToast(w, toast); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		return writeDocumentClose(w)
	})
}

// AuthLayout renders a public page: no navbar, a centered card with the
// page content, optional toast above it.
func AuthLayout(title string, toast *Toast, lang string, loc Localizer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeDocumentOpen(w, title, lang, loc); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="page page-auth">`); err != nil {
			return err
		}
		if err := writeToast(w, toast); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="card">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div></main>`); err != nil {
			return err
		}
		return writeDocumentClose(w)
	})
}

func writeDocumentOpen(w io.Writer, title, lang string, loc Localizer) error {
	if lang == "" {
		lang = "en"
	}
	pageTitle := esc(title)
	if appName := esc(T(loc, "layout.app_name")); appName != "" {
		pageTitle = pageTitle + " · " + appName
	}
	_, err := fmt.Fprintf(w,
		`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="%sstyles.css"></head><body>`,
		esc(lang), pageTitle, routepath.StaticPrefix)
	return err
}

func writeDocumentClose(w io.Writer) error {
	_, err := io.WriteString(w, `</body></html>`)
	return err
}

func writeNavbar(w io.Writer, viewer Viewer, loc Localizer) error {
	if _, err := fmt.Fprintf(w,
		`<nav class="navbar"><a class="navbar-brand" href="%s">%s</a><div class="navbar-links"><a href="%s">%s</a><a href="%s">%s</a>`,
		routepath.AppLabs, esc(T(loc, "layout.app_name")),
		routepath.AppLabs, esc(T(loc, "nav.home")),
		routepath.AppProfile, esc(T(loc, "nav.profile"))); err != nil {
		return err
	}
	if viewer.Admin {
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`,
			routepath.AppAdminUsers, esc(T(loc, "nav.manage_accounts"))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`</div><div class="navbar-user"><span class="navbar-name">%s</span><a class="navbar-signout" href="%s">%s</a></div></nav>`,
		esc(viewer.Name), routepath.Logout, esc(T(loc, "nav.sign_out")))
	return err
}

// writeToast renders the single toast slot plus the script that removes
// it after the visibility window.
func writeToast(w io.Writer, toast *Toast) error {
	if toast == nil || toast.Message == "" {
		return nil
	}
	kind := toast.Kind
	switch kind {
	case "success", "info", "error":
	default:
		kind = "info"
	}
	_, err := fmt.Fprintf(w,
		`<div id="toast" class="toast toast-%s" role="status">%s</div><script>setTimeout(function(){var t=document.getElementById("toast");if(t){t.remove();}},%d);</script>`,
		kind, esc(toast.Message), ToastVisibleMillis)
	return err
}
