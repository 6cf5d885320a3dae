package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// LoginForm carries the sign-in form state across failed submissions.
type LoginForm struct {
	Email  string
	Errors map[string]string
	// Alert is verbatim failure copy, already localized or supplied by
	// the directory service.
	Alert string
}

// LoginPage renders the sign-in form.
func LoginPage(form LoginForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "login.heading"))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, routepath.Login); err != nil {
			return err
		}
		if err := writeField(w, loc, field{Name: "email", Type: "email", LabelKey: "login.email", Value: form.Email, Required: true}, form.Errors); err != nil {
			return err
		}
		if err := writeField(w, loc, field{Name: "password", Type: "password", LabelKey: "login.password", Required: true}, form.Errors); err != nil {
			return err
		}
		if err := writeSubmit(w, loc, "login.submit"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</form><div class="form-links">`); err != nil {
			return err
		}
		if err := writeLink(w, routepath.NewAccount, T(loc, "login.link_register")); err != nil {
			return err
		}
		if err := writeLink(w, routepath.RecoverPassword, T(loc, "login.link_recover")); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RegisterForm carries the account creation form state.
type RegisterForm struct {
	Name   string
	Email  string
	Errors map[string]string
	Alert  string
}

// RegisterPage renders the account creation form.
func RegisterPage(form RegisterForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "register.heading"))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, routepath.NewAccount); err != nil {
			return err
		}
		fields := []field{
			{Name: "name", LabelKey: "register.name", Value: form.Name, Required: true},
			{Name: "email", Type: "email", LabelKey: "register.email", Value: form.Email, Required: true},
			{Name: "password", Type: "password", LabelKey: "register.password", Required: true},
			{Name: "confirm_password", Type: "password", LabelKey: "register.confirm_password", Required: true},
		}
		for _, f := range fields {
			if err := writeField(w, loc, f, form.Errors); err != nil {
				return err
			}
		}
		if err := writeSubmit(w, loc, "register.submit"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</form><div class="form-links">`); err != nil {
			return err
		}
		if err := writeLink(w, routepath.Login, T(loc, "register.link_login")); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RecoverForm carries the password recovery form state.
type RecoverForm struct {
	Email  string
	Errors map[string]string
	Alert  string
}

// RecoverPage renders the password reset form.
func RecoverPage(form RecoverForm, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(T(loc, "recover.heading"))); err != nil {
			return err
		}
		if err := writeAlert(w, form.Alert); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, routepath.RecoverPassword); err != nil {
			return err
		}
		fields := []field{
			{Name: "email", Type: "email", LabelKey: "recover.email", Value: form.Email, Required: true},
			{Name: "password", Type: "password", LabelKey: "recover.new_password", Required: true},
			{Name: "confirm_password", Type: "password", LabelKey: "recover.confirm_password", Required: true},
		}
		for _, f := range fields {
			if err := writeField(w, loc, f, form.Errors); err != nil {
				return err
			}
		}
		if err := writeSubmit(w, loc, "recover.submit"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</form><div class="form-links">`); err != nil {
			return err
		}
		if err := writeLink(w, routepath.Login, T(loc, "recover.link_login")); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
