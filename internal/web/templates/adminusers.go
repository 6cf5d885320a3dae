package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// UserRow is one account row of the admin listing.
type UserRow struct {
	ID      int
	Name    string
	Email   string
	Active  bool
	Admin   bool
	Created string
}

// UsersPage renders the admin account listing.
func UsersPage(rows []UserRow, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "adminusers.heading"))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<table class="table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th></th></tr></thead><tbody>`,
			esc(T(loc, "adminusers.col_id")), esc(T(loc, "adminusers.col_name")),
			esc(T(loc, "adminusers.col_email")), esc(T(loc, "adminusers.col_active")),
			esc(T(loc, "adminusers.col_admin")), esc(T(loc, "adminusers.col_created"))); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="table-actions"><a class="btn" href="%s">%s</a><a class="btn btn-danger" href="%s">%s</a></td></tr>`,
				row.ID, esc(row.Name), esc(row.Email),
				esc(yesNo(row.Active, loc)), esc(yesNo(row.Admin, loc)), esc(row.Created),
				routepath.AppAdminUserEdit(row.ID), esc(T(loc, "common.edit")),
				routepath.AppAdminUserDelete(row.ID), esc(T(loc, "common.delete"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// UserEditForm carries the admin account edit form state.
type UserEditForm struct {
	ID     int
	Name   string
	Email  string
	Active bool
	Admin  bool
	Errors map[string]string
	Alert  string
}

// UserEditPage renders the admin account edit form. The password pair is
// always presented blank; leaving it blank keeps the stored credential.
func UserEditPage(form UserEditForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "adminusers.edit_heading"))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form class="card" method="post" action="%s">`, routepath.AppAdminUserSave(form.ID)); err != nil {
			return err
		}
		fields := []field{
			{Name: "name", LabelKey: "adminusers.col_name", Value: form.Name, Required: true},
			{Name: "email", Type: "email", LabelKey: "adminusers.col_email", Value: form.Email, Required: true},
			{Name: "active", Type: "checkbox", LabelKey: "adminusers.field_active", Checked: form.Active},
			{Name: "admin", Type: "checkbox", LabelKey: "adminusers.field_admin", Checked: form.Admin},
			{Name: "password", Type: "password", LabelKey: "register.password", HintKey: "adminusers.password_hint"},
			{Name: "confirm_password", Type: "password", LabelKey: "register.confirm_password"},
		}
		for _, f := range fields {
			if err := writeField(w, loc, f, form.Errors); err != nil {
				return err
			}
		}
		if err := writeSubmit(w, loc, "common.save"); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<a class="btn" href="%s">%s</a></form>`,
			routepath.AppAdminUsers, esc(T(loc, "common.cancel")))
		return err
	})
}

func yesNo(value bool, loc Localizer) string {
	if value {
		return T(loc, "common.yes")
	}
	return T(loc, "common.no")
}
