package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ConfirmDelete describes a delete confirmation page. Nothing is sent
// upstream until the form posts to ConfirmAction; the cancel link just
// navigates back.
type ConfirmDelete struct {
	Heading       string
	Question      string
	ConfirmAction string
	CancelHref    string
}

// ConfirmDeletePage renders a two-step delete confirmation.
func ConfirmDeletePage(confirm ConfirmDelete, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><p class="confirm-question">%s</p>`,
			esc(confirm.Heading), esc(confirm.Question)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form class="confirm-actions" method="post" action="%s"><button class="btn btn-danger" type="submit">%s</button><a class="btn" href="%s">%s</a></form>`,
			esc(confirm.ConfirmAction), esc(T(loc, "common.delete")),
			esc(confirm.CancelHref), esc(T(loc, "common.cancel")))
		return err
	})
}
