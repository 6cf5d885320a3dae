package adminusers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/uamlabs/labfront/internal/directory"
	"github.com/uamlabs/labfront/internal/directory/users"
	apperrors "github.com/uamlabs/labfront/internal/web/platform/errors"
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

func (h handlers) handleList(w http.ResponseWriter, r *http.Request, user session.User) {
	list, err := h.directory.List(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, user, apperrors.EK(apperrors.KindUnavailable, "adminusers.error_load", "list users: "+err.Error()))
		return
	}
	rows := make([]templates.UserRow, 0, len(list))
	for _, record := range list {
		rows = append(rows, templates.UserRow{
			ID:      record.ID,
			Name:    record.Name,
			Email:   record.Email,
			Active:  record.Active,
			Admin:   record.Admin,
			Created: record.CreatedAt,
		})
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, user, templates.T(loc, "adminusers.title"), http.StatusOK, templates.UsersPage(rows, loc))
}

func (h handlers) handleEditGet(w http.ResponseWriter, r *http.Request, user session.User) {
	record, ok := h.findUser(w, r, user)
	if !ok {
		return
	}
	form := templates.UserEditForm{
		ID:     record.ID,
		Name:   record.Name,
		Email:  record.Email,
		Active: record.Active,
		Admin:  record.Admin,
	}
	h.renderEdit(w, r, user, http.StatusOK, form)
}

func (h handlers) handleSave(w http.ResponseWriter, r *http.Request, user session.User) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, user, apperrors.E(apperrors.KindInvalidInput, "parse user form"))
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	active := r.PostFormValue("active") == "true"
	admin := r.PostFormValue("admin") == "true"
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	var v forms.Validator
	v.Require("name", name)
	v.Require("email", email)
	v.Email("email", email)
	v.Password("password", password)
	v.ConfirmPassword("confirm_password", password, confirm)
	form := templates.UserEditForm{ID: id, Name: name, Email: email, Active: active, Admin: admin}
	if errs := v.Errors(); errs.Any() {
		form.Errors = errs
		h.renderEdit(w, r, user, http.StatusBadRequest, form)
		return
	}

	change := users.KeepPassword()
	if password != "" {
		change = users.SetPassword(password)
	}
	update := users.Update{
		ID:       id,
		Name:     name,
		Email:    email,
		Active:   active,
		Admin:    admin,
		Password: change,
	}
	if _, err := h.directory.Update(httpx.RequestContext(r), id, update); err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "adminusers.error_update")
		}
		form.Alert = alert
		h.renderEdit(w, r, user, http.StatusBadRequest, form)
		return
	}

	h.Flash(w, r, flash.NoticeSuccess("adminusers.notice_updated"))
	httpx.WriteRedirect(w, r, routepath.AppAdminUsers)
}

// handleDeleteGet renders the confirmation step. Nothing is sent
// upstream until the admin confirms.
func (h handlers) handleDeleteGet(w http.ResponseWriter, r *http.Request, user session.User) {
	record, ok := h.findUser(w, r, user)
	if !ok {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	confirm := templates.ConfirmDelete{
		Heading:       templates.T(loc, "adminusers.delete_heading"),
		Question:      templates.T(loc, "adminusers.delete_confirm", record.Name),
		ConfirmAction: routepath.AppAdminUserDelete(record.ID),
		CancelHref:    routepath.AppAdminUsers,
	}
	h.WritePage(w, r, user, templates.T(loc, "adminusers.delete_heading"), http.StatusOK, templates.ConfirmDeletePage(confirm, loc))
}

func (h handlers) handleDeletePost(w http.ResponseWriter, r *http.Request, user session.User) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return
	}
	if err := h.directory.Delete(httpx.RequestContext(r), id); err != nil {
		if alert := directory.ServerMessage(err); alert != "" {
			h.Flash(w, r, flash.NoticeErrorText(alert))
		} else {
			h.Flash(w, r, flash.NoticeError("adminusers.error_delete"))
		}
		httpx.WriteRedirect(w, r, routepath.AppAdminUsers)
		return
	}
	h.Flash(w, r, flash.NoticeSuccess("adminusers.notice_deleted"))
	httpx.WriteRedirect(w, r, routepath.AppAdminUsers)
}

func (h handlers) renderEdit(w http.ResponseWriter, r *http.Request, user session.User, statusCode int, form templates.UserEditForm) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, user, templates.T(loc, "adminusers.edit_heading"), statusCode, templates.UserEditPage(form, loc))
}

// findUser loads the directory listing and resolves the path id against
// it. The directory exposes no single-record endpoint.
func (h handlers) findUser(w http.ResponseWriter, r *http.Request, user session.User) (users.User, bool) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return users.User{}, false
	}
	list, err := h.directory.List(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, user, apperrors.EK(apperrors.KindUnavailable, "adminusers.error_load", "list users: "+err.Error()))
		return users.User{}, false
	}
	for _, record := range list {
		if record.ID == id {
			return record, true
		}
	}
	h.WriteNotFound(w, r, user)
	return users.User{}, false
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
