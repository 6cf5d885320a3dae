package auth

import (
	"net/http"
	"strings"

	"github.com/uamlabs/labfront/internal/directory"
	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/platform/flash"
	"github.com/uamlabs/labfront/internal/web/platform/forms"
	"github.com/uamlabs/labfront/internal/web/platform/httpx"
	"github.com/uamlabs/labfront/internal/web/platform/publichandler"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
	"github.com/uamlabs/labfront/internal/web/templates"
)

type handlers struct {
	publichandler.Base
	directory UserDirectory
	sessions  session.Store
}

func newHandlers(directory UserDirectory, sessions session.Store, base publichandler.Base) handlers {
	return handlers{Base: base, directory: directory, sessions: sessions}
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Load(r); ok {
		httpx.WriteRedirect(w, r, routepath.AppLabs)
		return
	}
	h.renderLogin(w, r, http.StatusOK, templates.LoginForm{})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, templates.LoginForm{})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	var v forms.Validator
	v.Require("email", email)
	v.Email("email", email)
	v.Require("password", password)
	if errs := v.Errors(); errs.Any() {
		h.renderLogin(w, r, http.StatusBadRequest, templates.LoginForm{Email: email, Errors: errs})
		return
	}

	user, err := h.directory.Login(httpx.RequestContext(r), email, password)
	if err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "login.error_default")
		}
		h.renderLogin(w, r, http.StatusUnauthorized, templates.LoginForm{Email: email, Alert: alert})
		return
	}

	h.sessions.Save(w, r, session.FromDirectory(user))
	httpx.WriteRedirect(w, r, routepath.AppLabs)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, statusCode int, form templates.LoginForm) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, templates.T(loc, "login.title"), statusCode, templates.LoginPage(form, loc))
}

func (h handlers) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, templates.RegisterForm{})
}

func (h handlers) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, templates.RegisterForm{})
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	var v forms.Validator
	v.Require("name", name)
	v.Require("email", email)
	v.Email("email", email)
	v.Require("password", password)
	v.Password("password", password)
	v.ConfirmPassword("confirm_password", password, confirm)
	form := templates.RegisterForm{Name: name, Email: email}
	if errs := v.Errors(); errs.Any() {
		form.Errors = errs
		h.renderRegister(w, r, http.StatusBadRequest, form)
		return
	}

	if err := h.directory.Register(httpx.RequestContext(r), users.NewRegistration(name, email, password)); err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "register.error_default")
		}
		form.Alert = alert
		h.renderRegister(w, r, http.StatusBadRequest, form)
		return
	}

	h.Flash(w, r, flash.NoticeSuccess("register.notice_created"))
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, statusCode int, form templates.RegisterForm) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, templates.T(loc, "register.title"), statusCode, templates.RegisterPage(form, loc))
}

func (h handlers) handleRecoverGet(w http.ResponseWriter, r *http.Request) {
	h.renderRecover(w, r, http.StatusOK, templates.RecoverForm{})
}

func (h handlers) handleRecoverPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRecover(w, r, http.StatusBadRequest, templates.RecoverForm{})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	var v forms.Validator
	v.Require("email", email)
	v.Email("email", email)
	v.Require("password", password)
	v.Password("password", password)
	v.ConfirmPassword("confirm_password", password, confirm)
	form := templates.RecoverForm{Email: email}
	if errs := v.Errors(); errs.Any() {
		form.Errors = errs
		h.renderRecover(w, r, http.StatusBadRequest, form)
		return
	}

	if err := h.directory.ResetPassword(httpx.RequestContext(r), email, password); err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "recover.error_default")
		}
		form.Alert = alert
		h.renderRecover(w, r, http.StatusBadRequest, form)
		return
	}

	h.Flash(w, r, flash.NoticeSuccess("recover.notice_updated"))
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) renderRecover(w http.ResponseWriter, r *http.Request, statusCode int, form templates.RecoverForm) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, templates.T(loc, "recover.title"), statusCode, templates.RecoverPage(form, loc))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	h.Flash(w, r, flash.NoticeInfo("login.notice_signed_out"))
	httpx.WriteRedirect(w, r, routepath.Login)
}

// handleCatchAll sends any unmatched path to the sign-in view. The root
// path itself lands here too; a signed-in user bounces straight through
// to the home view.
func (h handlers) handleCatchAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Load(r); ok {
		httpx.WriteRedirect(w, r, routepath.AppLabs)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Login)
}
