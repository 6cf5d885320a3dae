package profile

import (
	"net/http"
	"strings"

	"github.com/uamlabs/labfront/internal/directory"
	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/platform/flash"
	"github.com/uamlabs/labfront/internal/web/platform/forms"
	"github.com/uamlabs/labfront/internal/web/platform/httpx"
	"github.com/uamlabs/labfront/internal/web/platform/modulehandler"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
	"github.com/uamlabs/labfront/internal/web/templates"
)

type handlers struct {
	modulehandler.Base
	directory UserDirectory
}

func newHandlers(directory UserDirectory, base modulehandler.Base) handlers {
	return handlers{Base: base, directory: directory}
}

func (h handlers) handleProfileGet(w http.ResponseWriter, r *http.Request, user session.User) {
	h.renderProfile(w, r, user, http.StatusOK, templates.ProfileForm{Name: user.Name, Email: user.Email})
}

func (h handlers) handleProfilePost(w http.ResponseWriter, r *http.Request, user session.User) {
	if err := r.ParseForm(); err != nil {
		h.renderProfile(w, r, user, http.StatusBadRequest, templates.ProfileForm{Name: user.Name, Email: user.Email})
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	var v forms.Validator
	v.Require("name", name)
	v.Require("email", email)
	v.Email("email", email)
	v.Password("password", password)
	form := templates.ProfileForm{Name: name, Email: email}
	if errs := v.Errors(); errs.Any() {
		form.Errors = errs
		h.renderProfile(w, r, user, http.StatusBadRequest, form)
		return
	}

	// A blank password keeps the stored credential; the flags travel
	// unchanged from the session snapshot.
	change := users.KeepPassword()
	if password != "" {
		change = users.SetPassword(password)
	}
	update := users.Update{
		ID:       user.ID,
		Name:     name,
		Email:    email,
		Active:   user.Active,
		Admin:    user.Admin,
		Password: change,
	}

	updated, err := h.directory.Update(httpx.RequestContext(r), user.ID, update)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "profile.error_default")
		}
		form.Alert = alert
		h.renderProfile(w, r, user, http.StatusBadRequest, form)
		return
	}
	if updated.ID == 0 {
		// Update endpoints that answer with a bare message leave the
		// record to the submitted values.
		updated = users.User{ID: user.ID, Name: name, Email: email, Active: user.Active, Admin: user.Admin, CreatedAt: user.CreatedAt}
	}

	h.Sessions().Save(w, r, session.FromDirectory(updated))
	h.Flash(w, r, flash.NoticeSuccess("profile.notice_saved"))
	httpx.WriteRedirect(w, r, routepath.AppProfile)
}

func (h handlers) renderProfile(w http.ResponseWriter, r *http.Request, user session.User, statusCode int, form templates.ProfileForm) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, user, templates.T(loc, "profile.title"), statusCode, templates.ProfilePage(form, loc))
}
