package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// ProfileForm carries the self-profile edit form state. The password
// field is always presented blank; leaving it blank keeps the stored
// credential.
type ProfileForm struct {
	Name   string
	Email  string
	Errors map[string]string
	Alert  string
}

// ProfilePage renders the self-profile edit form.
func ProfilePage(form ProfileForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "profile.heading"))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form class="card" method="post" action="%s">`, routepath.AppProfile); err != nil {
			return err
		}
		fields := []field{
			{Name: "name", LabelKey: "profile.name", Value: form.Name, Required: true},
			{Name: "email", Type: "email", LabelKey: "profile.email", Value: form.Email, Required: true},
			{Name: "password", Type: "password", LabelKey: "profile.password", HintKey: "profile.password_hint"},
		}
		for _, f := range fields {
			if err := writeField(w, loc, f, form.Errors); err != nil {
				return err
			}
		}
		if err := writeSubmit(w, loc, "common.save"); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}
