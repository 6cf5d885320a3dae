package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// LabRow is one laboratory row of the home listing. Owner is the
// already-resolved display label ("name (email)" or the unassigned copy).
type LabRow struct {
	ID       int
	Code     string
	Name     string
	Location string
	Capacity int
	Active   bool
	Owner    string
}

// LabsPage renders the laboratory listing. Management actions (new,
// edit, delete) only render for administrators; a non-empty alert
// renders above the table.
func LabsPage(rows []LabRow, canManage bool, alert string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="page-header"><h1>%s</h1>`, esc(T(loc, "labs.heading"))); err != nil {
			return err
		}
		if canManage {
			if _, err := fmt.Fprintf(w, `<a class="btn btn-primary" href="%s">%s</a>`,
				routepath.AppLabNew, esc(T(loc, "labs.new"))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if err := writeAlert(w, alert); err != nil {
			return err
		}
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty-state">%s</p>`, esc(T(loc, "labs.empty")))
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<table class="table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th>`,
			esc(T(loc, "labs.col_code")), esc(T(loc, "labs.col_name")),
			esc(T(loc, "labs.col_location")), esc(T(loc, "labs.col_capacity")),
			esc(T(loc, "labs.col_active")), esc(T(loc, "labs.col_owner"))); err != nil {
			return err
		}
		if canManage {
			if _, err := io.WriteString(w, `<th></th>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td>`,
				esc(row.Code), esc(row.Name), esc(row.Location), row.Capacity,
				esc(yesNo(row.Active, loc)), esc(row.Owner)); err != nil {
				return err
			}
			if canManage {
				if _, err := fmt.Fprintf(w,
					`<td class="table-actions"><a class="btn" href="%s">%s</a><a class="btn btn-danger" href="%s">%s</a></td>`,
					routepath.AppLabEdit(row.ID), esc(T(loc, "common.edit")),
					routepath.AppLabDelete(row.ID), esc(T(loc, "common.delete"))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// OwnerOption is one entry of the lab assignment dropdown.
type OwnerOption struct {
	ID    int
	Label string
}

// LabForm carries the lab create/edit form state. Capacity stays a
// string so invalid input survives a redisplay.
type LabForm struct {
	ID       int
	IsNew    bool
	Code     string
	Name     string
	Location string
	Capacity string
	Active   bool
	OwnerID  *int
	Owners   []OwnerOption
	Errors   map[string]string
	Alert    string
}

// LabFormPage renders the lab create/edit form.
func LabFormPage(form LabForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		headingKey := "labs.edit_heading"
		action := routepath.AppLabSave(form.ID)
		if form.IsNew {
			headingKey = "labs.new_heading"
			action = routepath.AppLabs
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, headingKey))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form class="card" method="post" action="%s">`, action); err != nil {
			return err
		}
		fields := []field{
			{Name: "code", LabelKey: "labs.field_code", Value: form.Code, Required: true},
			{Name: "name", LabelKey: "labs.field_name", Value: form.Name, Required: true},
			{Name: "location", LabelKey: "labs.field_location", Value: form.Location, Required: true},
			{Name: "capacity", Type: "number", LabelKey: "labs.field_capacity", Value: form.Capacity, Required: true},
			{Name: "active", Type: "checkbox", LabelKey: "labs.field_active", Checked: form.Active},
		}
		for _, f := range fields {
			if err := writeField(w, loc, f, form.Errors); err != nil {
				return err
			}
		}
		if err := writeOwnerSelect(w, form, loc); err != nil {
			return err
		}
		if err := writeSubmit(w, loc, "common.save"); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<a class="btn" href="%s">%s</a></form>`,
			routepath.AppLabs, esc(T(loc, "common.cancel")))
		return err
	})
}

func writeOwnerSelect(w io.Writer, form LabForm, loc Localizer) error {
	if _, err := fmt.Fprintf(w,
		`<div class="form-field"><label for="owner">%s</label><select id="owner" name="owner"><option value="">%s</option>`,
		esc(T(loc, "labs.field_owner")), esc(T(loc, "labs.owner_none_option"))); err != nil {
		return err
	}
	for _, option := range form.Owners {
		selected := ""
		if form.OwnerID != nil && *form.OwnerID == option.ID {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			strconv.Itoa(option.ID), selected, esc(option.Label)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</select>`); err != nil {
		return err
	}
	if err := writeFieldError(w, loc, "owner", form.Errors); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}
