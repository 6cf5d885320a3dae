package labs

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/uamlabs/labfront/internal/directory"
	"github.com/uamlabs/labfront/internal/directory/labs"
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
	labs  LabDirectory
	users UserDirectory
}

func newHandlers(labDirectory LabDirectory, userDirectory UserDirectory, base modulehandler.Base) handlers {
	return handlers{Base: base, labs: labDirectory, users: userDirectory}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request, user session.User) {
	list, err := h.labs.List(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, user, apperrors.EK(apperrors.KindUnavailable, "labs.error_load", "list labs: "+err.Error()))
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	unassigned := templates.T(loc, "labs.owner_unassigned")

	visible := visibleLabs(list, user)
	byID := map[int]users.User{}
	degraded := false
	alert := ""
	if user.Admin {
		// Owner names are chrome: a failed user fetch degrades the
		// labels instead of failing the listing.
		if accounts, err := h.users.List(httpx.RequestContext(r)); err == nil {
			byID = usersByID(accounts)
		} else {
			log.Printf("labs: list users for owner labels: %v", err)
			degraded = true
			alert = templates.T(loc, "labs.error_users_load")
		}
	} else {
		byID[user.ID] = users.User{ID: user.ID, Name: user.Name, Email: user.Email}
	}

	rows := labRows(visible, byID, unassigned, degraded)
	h.WritePage(w, r, user, templates.T(loc, "labs.title"), http.StatusOK, templates.LabsPage(rows, user.Admin, alert, loc))
}

func (h handlers) handleNewGet(w http.ResponseWriter, r *http.Request, user session.User) {
	form := templates.LabForm{IsNew: true, Active: true}
	h.renderForm(w, r, user, http.StatusOK, h.withOwnerOptions(w, r, form))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request, user session.User) {
	form, lab, ok := h.parseLabForm(w, r, user, 0, true)
	if !ok {
		return
	}
	if _, err := h.labs.Create(httpx.RequestContext(r), lab); err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "labs.error_create")
		}
		form.Alert = alert
		h.renderForm(w, r, user, http.StatusBadRequest, h.withOwnerOptions(w, r, form))
		return
	}
	h.Flash(w, r, flash.NoticeSuccess("labs.notice_created"))
	httpx.WriteRedirect(w, r, routepath.AppLabs)
}

func (h handlers) handleEditGet(w http.ResponseWriter, r *http.Request, user session.User) {
	lab, ok := h.findLab(w, r, user)
	if !ok {
		return
	}
	form := templates.LabForm{
		ID:       lab.ID,
		Code:     lab.Code,
		Name:     lab.Name,
		Location: lab.Location,
		Capacity: strconv.Itoa(lab.Capacity),
		Active:   lab.Active,
		OwnerID:  lab.OwnerID,
	}
	h.renderForm(w, r, user, http.StatusOK, h.withOwnerOptions(w, r, form))
}

func (h handlers) handleSave(w http.ResponseWriter, r *http.Request, user session.User) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return
	}
	form, lab, ok := h.parseLabForm(w, r, user, id, false)
	if !ok {
		return
	}
	if _, err := h.labs.Update(httpx.RequestContext(r), id, lab); err != nil {
		loc, _ := h.PageLocalizer(w, r)
		alert := directory.ServerMessage(err)
		if alert == "" {
			alert = templates.T(loc, "labs.error_update")
		}
		form.Alert = alert
		h.renderForm(w, r, user, http.StatusBadRequest, h.withOwnerOptions(w, r, form))
		return
	}
	h.Flash(w, r, flash.NoticeSuccess("labs.notice_updated"))
	httpx.WriteRedirect(w, r, routepath.AppLabs)
}

// handleDeleteGet renders the confirmation step. Nothing is sent
// upstream until the administrator confirms.
func (h handlers) handleDeleteGet(w http.ResponseWriter, r *http.Request, user session.User) {
	lab, ok := h.findLab(w, r, user)
	if !ok {
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	confirm := templates.ConfirmDelete{
		Heading:       templates.T(loc, "labs.delete_heading"),
		Question:      templates.T(loc, "labs.delete_confirm", lab.Name),
		ConfirmAction: routepath.AppLabDelete(lab.ID),
		CancelHref:    routepath.AppLabs,
	}
	h.WritePage(w, r, user, templates.T(loc, "labs.delete_heading"), http.StatusOK, templates.ConfirmDeletePage(confirm, loc))
}

func (h handlers) handleDeletePost(w http.ResponseWriter, r *http.Request, user session.User) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return
	}
	if err := h.labs.Delete(httpx.RequestContext(r), id); err != nil {
		if alert := directory.ServerMessage(err); alert != "" {
			h.Flash(w, r, flash.NoticeErrorText(alert))
		} else {
			h.Flash(w, r, flash.NoticeError("labs.error_delete"))
		}
		httpx.WriteRedirect(w, r, routepath.AppLabs)
		return
	}
	h.Flash(w, r, flash.NoticeSuccess("labs.notice_deleted"))
	httpx.WriteRedirect(w, r, routepath.AppLabs)
}

// parseLabForm validates the submission and builds the wire record.
// A false return means the response was already written.
func (h handlers) parseLabForm(w http.ResponseWriter, r *http.Request, user session.User, id int, isNew bool) (templates.LabForm, labs.Lab, bool) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, user, apperrors.E(apperrors.KindInvalidInput, "parse lab form"))
		return templates.LabForm{}, labs.Lab{}, false
	}
	code := strings.TrimSpace(r.PostFormValue("code"))
	name := strings.TrimSpace(r.PostFormValue("name"))
	location := strings.TrimSpace(r.PostFormValue("location"))
	capacity := strings.TrimSpace(r.PostFormValue("capacity"))
	active := r.PostFormValue("active") == "true"
	owner := strings.TrimSpace(r.PostFormValue("owner"))

	var v forms.Validator
	v.Require("code", code)
	v.Require("name", name)
	v.Require("location", location)
	v.Require("capacity", capacity)

	capacityValue := 0
	if capacity != "" {
		parsed, err := strconv.Atoi(capacity)
		if err != nil || parsed < 0 {
			v.Fail("capacity", forms.ErrNumber)
		} else {
			capacityValue = parsed
		}
	}

	var ownerID *int
	if owner != "" {
		parsed, err := strconv.Atoi(owner)
		if err != nil || parsed <= 0 {
			v.Fail("owner", forms.ErrNumber)
		} else {
			ownerID = &parsed
		}
	}

	form := templates.LabForm{
		ID:       id,
		IsNew:    isNew,
		Code:     code,
		Name:     name,
		Location: location,
		Capacity: capacity,
		Active:   active,
		OwnerID:  ownerID,
	}
	if errs := v.Errors(); errs.Any() {
		form.Errors = errs
		h.renderForm(w, r, user, http.StatusBadRequest, h.withOwnerOptions(w, r, form))
		return templates.LabForm{}, labs.Lab{}, false
	}

	lab := labs.Lab{
		ID:       id,
		Code:     code,
		Name:     name,
		Location: location,
		Capacity: capacityValue,
		Active:   active,
		OwnerID:  ownerID,
	}
	return form, lab, true
}

// withOwnerOptions fills the assignment dropdown. A failed user fetch
// leaves the dropdown empty and says so instead of failing the form.
func (h handlers) withOwnerOptions(w http.ResponseWriter, r *http.Request, form templates.LabForm) templates.LabForm {
	accounts, err := h.users.List(httpx.RequestContext(r))
	if err != nil {
		if form.Alert == "" {
			loc, _ := h.PageLocalizer(w, r)
			form.Alert = templates.T(loc, "labs.error_users_load")
		}
		return form
	}
	form.Owners = ownerOptions(accounts)
	return form
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, user session.User, statusCode int, form templates.LabForm) {
	loc, _ := h.PageLocalizer(w, r)
	titleKey := "labs.edit_heading"
	if form.IsNew {
		titleKey = "labs.new_heading"
	}
	h.WritePage(w, r, user, templates.T(loc, titleKey), statusCode, templates.LabFormPage(form, loc))
}

// findLab loads the lab listing and resolves the path id against it.
// The directory exposes no single-record endpoint.
func (h handlers) findLab(w http.ResponseWriter, r *http.Request, user session.User) (labs.Lab, bool) {
	id, ok := pathID(r)
	if !ok {
		h.WriteNotFound(w, r, user)
		return labs.Lab{}, false
	}
	list, err := h.labs.List(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, user, apperrors.EK(apperrors.KindUnavailable, "labs.error_load", "list labs: "+err.Error()))
		return labs.Lab{}, false
	}
	for _, lab := range list {
		if lab.ID == id {
			return lab, true
		}
	}
	h.WriteNotFound(w, r, user)
	return labs.Lab{}, false
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
