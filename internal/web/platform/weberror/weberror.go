// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/uamlabs/labfront/internal/web/i18n"
	apperrors "github.com/uamlabs/labfront/internal/web/platform/errors"
	"github.com/uamlabs/labfront/internal/web/platform/pagerender"
	"github.com/uamlabs/labfront/internal/web/templates"
)

// ShouldRenderErrorPage reports whether status should use error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page inside the app shell.
func WriteAppError(w http.ResponseWriter, r *http.Request, viewer templates.Viewer, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := i18n.ResolveLocalizer(w, r)
	page := pagerender.AppPage{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Viewer:     viewer,
		Content:    templates.ErrorPage(statusCode, loc),
	}
	if err := pagerender.WriteAppPage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response:
// error-page statuses get the shared error page, the rest a plain
// message with the mapped status.
func WriteModuleError(w http.ResponseWriter, r *http.Request, viewer templates.Viewer, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteAppError(w, r, viewer, statusCode)
		return
	}
	loc, _ := i18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
