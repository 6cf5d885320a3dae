package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.not_found")
	}
	return T(loc, "error.generic")
}

// ErrorPage renders the shared error state with a way back home.
func ErrorPage(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		message := "error.generic"
		if statusCode == http.StatusNotFound {
			message = "error.not_found"
		}
		if _, err := fmt.Fprintf(w,
			`<div class="error-state"><h1>%d</h1><p>%s</p>`,
			statusCode, esc(T(loc, message))); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<a class="btn" href="%s">%s</a></div>`,
			routepath.AppLabs, esc(T(loc, "nav.home")))
		return err
	})
}
