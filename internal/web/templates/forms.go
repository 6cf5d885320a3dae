package templates

import (
	"fmt"
	"io"
)

// field describes one labelled form input.
type field struct {
	Name     string
	Type     string
	LabelKey string
	Value    string
	HintKey  string
	Checked  bool
	Required bool
}

// writeField renders a labelled input plus its validation error, if the
// errors map carries a localization key for the field name.
func writeField(w io.Writer, loc Localizer, f field, errors map[string]string) error {
	inputType := f.Type
	if inputType == "" {
		inputType = "text"
	}
	if inputType == "checkbox" {
		return writeCheckbox(w, loc, f, errors)
	}
	required := ""
	if f.Required {
		required = " required"
	}
	if _, err := fmt.Fprintf(w,
		`<div class="form-field"><label for="%s">%s</label><input id="%s" name="%s" type="%s" value="%s"%s>`,
		esc(f.Name), esc(T(loc, f.LabelKey)), esc(f.Name), esc(f.Name), esc(inputType), esc(f.Value), required); err != nil {
		return err
	}
	if f.HintKey != "" {
		if _, err := fmt.Fprintf(w, `<p class="field-hint">%s</p>`, esc(T(loc, f.HintKey))); err != nil {
			return err
		}
	}
	if err := writeFieldError(w, loc, f.Name, errors); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func writeCheckbox(w io.Writer, loc Localizer, f field, errors map[string]string) error {
	checked := ""
	if f.Checked {
		checked = " checked"
	}
	if _, err := fmt.Fprintf(w,
		`<div class="form-field form-field-check"><label><input name="%s" type="checkbox" value="true"%s> %s</label>`,
		esc(f.Name), checked, esc(T(loc, f.LabelKey))); err != nil {
		return err
	}
	if err := writeFieldError(w, loc, f.Name, errors); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func writeFieldError(w io.Writer, loc Localizer, name string, errors map[string]string) error {
	key := errors[name]
	if key == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(T(loc, key)))
	return err
}

// writeAlert renders verbatim failure copy above a form.
func writeAlert(w io.Writer, alert string) error {
	if alert == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<div class="alert alert-error" role="alert">%s</div>`, esc(alert))
	return err
}

func writeSubmit(w io.Writer, loc Localizer, labelKey string) error {
	_, err := fmt.Fprintf(w, `<button class="btn btn-primary" type="submit">%s</button>`, esc(T(loc, labelKey)))
	return err
}

func writeLink(w io.Writer, href, label string) error {
	_, err := fmt.Fprintf(w, `<a class="form-link" href="%s">%s</a>`, esc(href), esc(label))
	return err
}
